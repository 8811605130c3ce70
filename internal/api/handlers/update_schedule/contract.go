package update_schedule

import (
	"context"

	"github.com/toyesterday/agenda/internal/domain"
)

type ScheduleService interface {
	ReplaceWeek(ctx context.Context, professionalID int64, entries []domain.WeeklySchedule) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
