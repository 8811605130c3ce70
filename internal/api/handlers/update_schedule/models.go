package update_schedule

import (
	"github.com/toyesterday/agenda/internal/domain"
	"github.com/toyesterday/agenda/pkg/types"
)

// ScheduleEntryRequest запись расписания на один день недели.
// StartTime/EndTime - местное время бизнеса в формате HH:MM,
// обязательны только для рабочих дней.
type ScheduleEntryRequest struct {
	DayOfWeek   int     `json:"dayOfWeek"` // 0=воскресенье .. 6=суббота
	IsAvailable bool    `json:"isAvailable"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries"`
}

// ToDomainEntries конвертирует HTTP запрос в доменные записи расписания
func (r *UpdateScheduleRequest) ToDomainEntries(professionalID int64) ([]domain.WeeklySchedule, error) {
	entries := make([]domain.WeeklySchedule, 0, len(r.Entries))
	for _, e := range r.Entries {
		entry := domain.WeeklySchedule{
			ProfessionalID: professionalID,
			DayOfWeek:      e.DayOfWeek,
			IsAvailable:    e.IsAvailable,
		}

		if e.StartTime != nil {
			start, err := types.NewTimeOfDayFromString(*e.StartTime)
			if err != nil {
				return nil, err
			}
			entry.StartTime = &start
		}

		if e.EndTime != nil {
			end, err := types.NewTimeOfDayFromString(*e.EndTime)
			if err != nil {
				return nil, err
			}
			entry.EndTime = &end
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
