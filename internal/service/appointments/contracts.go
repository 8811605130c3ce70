package appointments

import (
	"context"

	"github.com/toyesterday/agenda/internal/domain"
	"github.com/toyesterday/agenda/internal/integrations/notify"
	"github.com/toyesterday/agenda/internal/service/loyalty"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
	CancelByToken(ctx context.Context, id int64, token string) (*domain.Appointment, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
// (нужен часовой пояс бизнеса для инвалидации кеша по местной дате)
type ProfessionalRepository interface {
	GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error)
}

// LoyaltyLedger интерфейс сервиса лояльности
type LoyaltyLedger interface {
	Accrue(ctx context.Context, clientID int64, serviceName string) (*loyalty.Result, error)
	Deduct(ctx context.Context, clientID int64, serviceName string) error
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
