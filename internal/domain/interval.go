package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End) в UTC
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал от start длительностью duration
func NewInterval(start time.Time, duration time.Duration) Interval {
	return Interval{Start: start, End: start.Add(duration)}
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Используются строгие неравенства: интервалы, соприкасающиеся границами
// (A.End == B.Start), НЕ пересекаются - это позволяет записи "впритык".
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains проверяет, что момент t попадает в интервал
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration возвращает длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// LocalDayOf возвращает календарную дату (местную полночь) и день недели
// момента instant в часовом поясе loc. День недели и дата должны считаться
// в поясе бизнеса: UTC-момент около полуночи может относиться к другой
// местной дате.
func LocalDayOf(instant time.Time, loc *time.Location) (time.Time, time.Weekday) {
	local := instant.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return day, local.Weekday()
}
