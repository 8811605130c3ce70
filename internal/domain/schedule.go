package domain

import "github.com/toyesterday/agenda/pkg/types"

// WeeklySchedule запись недельного расписания мастера.
// Не более одной записи на пару (мастер, день недели).
// DayOfWeek: 0=воскресенье .. 6=суббота.
// StartTime/EndTime - местное время бизнеса, имеют смысл только при IsAvailable.
type WeeklySchedule struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      int
	IsAvailable    bool
	StartTime      *types.TimeOfDay
	EndTime        *types.TimeOfDay
}

// IsWorking возвращает true, если запись описывает рабочий день
// с заполненными границами
func (s *WeeklySchedule) IsWorking() bool {
	return s.IsAvailable && s.StartTime != nil && s.EndTime != nil
}
