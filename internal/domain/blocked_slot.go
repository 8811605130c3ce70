package domain

import "time"

// BlockedSlot заблокированный интервал времени.
// ProfessionalID == nil означает блокировку для всех мастеров бизнеса.
// Статуса нет: существование записи означает активную блокировку.
type BlockedSlot struct {
	ID             int64
	BusinessID     int64
	ProfessionalID *int64
	StartTime      time.Time
	EndTime        time.Time
	Reason         *string
	CreatedAt      time.Time
}

// Interval возвращает заблокированный UTC-интервал
func (b *BlockedSlot) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// AppliesTo проверяет, действует ли блокировка на указанного мастера
func (b *BlockedSlot) AppliesTo(professionalID int64) bool {
	return b.ProfessionalID == nil || *b.ProfessionalID == professionalID
}
