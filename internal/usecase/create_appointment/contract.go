package create_appointment

import (
	"context"
	"time"

	"github.com/toyesterday/agenda/internal/domain"
	"github.com/toyesterday/agenda/internal/integrations/notify"
)

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
	GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetBusyByProfessionalWindow получает занятые записи мастера за окно дня
	GetBusyByProfessionalWindow(ctx context.Context, professionalID int64, windowStart, windowEnd time.Time) ([]*domain.Appointment, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	GetOverlappingWindow(ctx context.Context, businessID, professionalID int64, windowStart, windowEnd time.Time) ([]*domain.BlockedSlot, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByPhone(ctx context.Context, businessID int64, phone string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

// Notifier интерфейс диспетчера уведомлений (fire-and-forget)
type Notifier interface {
	Dispatch(event notify.AppointmentEvent)
}

// AvailabilityCache интерфейс инвалидации кеша доступности
type AvailabilityCache interface {
	Invalidate(ctx context.Context, professionalID int64, date string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
