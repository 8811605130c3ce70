package domain

import "time"

// Business бизнес-тенант (салон, барбершоп).
// Все местные времена его мастеров интерпретируются в Timezone.
type Business struct {
	ID       int64
	Name     string
	Timezone string
}

// Location возвращает *time.Location бизнеса.
// При пустом имени пояса используется DefaultTimezone,
// неизвестное имя - ошибка.
func (b *Business) Location() (*time.Location, error) {
	tz := b.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}

// Professional мастер, принадлежит ровно одному бизнесу
type Professional struct {
	ID         int64
	BusinessID int64
	Name       string
}
