package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Формат локального времени HH:MM
const timeOfDayFormat = "15:04"

// TimeOfDay локальное время суток без даты и часового пояса (например, "09:00").
// Хранится в БД как строка HH:MM, используется для границ рабочего дня мастера.
type TimeOfDay string

// NewTimeOfDay создает TimeOfDay из time.Time (берёт только часы и минуты)
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Format(timeOfDayFormat))
}

// NewTimeOfDayFromString парсит строку формата HH:MM или HH:MM:SS
func NewTimeOfDayFromString(s string) (TimeOfDay, error) {
	if _, err := time.Parse(timeOfDayFormat, s); err == nil {
		return TimeOfDay(s), nil
	}
	// Поддерживаем формат HH:MM:SS (так время приходит из некоторых источников)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return TimeOfDay(t.Format(timeOfDayFormat)), nil
	}
	return "", fmt.Errorf("types: invalid time of day %q, expected HH:MM", s)
}

// String возвращает строковое представление HH:MM
func (t TimeOfDay) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeOfDay) Minutes() (int, error) {
	parsed, err := time.Parse(timeOfDayFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time of day %q: %v", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Возвращает ошибку при выходе за границы суток.
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("types: time of day overflow: %s + %dm", string(t), minutes)
	}
	return TimeOfDay(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore строгое сравнение: t < other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return string(t) < string(other)
}

// IsAfter строгое сравнение: t > other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return string(t) > string(other)
}

// OnDate совмещает время суток с календарной датой в указанной локации,
// возвращает абсолютный момент времени
func (t TimeOfDay) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(timeOfDayFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid time of day %q: %v", string(t), err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		parsed, err := NewTimeOfDayFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := NewTimeOfDayFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = NewTimeOfDay(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeOfDay", value)
	}
	return nil
}

// Value реализует driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	return string(t), nil
}
