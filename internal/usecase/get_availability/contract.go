package get_availability

import (
	"context"
	"time"

	"github.com/toyesterday/agenda/internal/domain"
)

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// GetByProfessionalAndWeekday получает запись расписания на день недели
	GetByProfessionalAndWeekday(ctx context.Context, professionalID int64, dayOfWeek int) (*domain.WeeklySchedule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBusyByProfessionalWindow получает занятые записи мастера за окно дня
	GetBusyByProfessionalWindow(ctx context.Context, professionalID int64, windowStart, windowEnd time.Time) ([]*domain.Appointment, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	// GetOverlappingWindow получает блокировки, пересекающие окно дня
	GetOverlappingWindow(ctx context.Context, businessID, professionalID int64, windowStart, windowEnd time.Time) ([]*domain.BlockedSlot, error)
}

// AvailabilityCache интерфейс кеша ответов расчёта
type AvailabilityCache interface {
	Get(ctx context.Context, professionalID int64, date string, durationMinutes int) ([]time.Time, bool)
	Set(ctx context.Context, professionalID int64, date string, durationMinutes int, times []time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
