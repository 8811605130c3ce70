package get_client_appointments

import (
	"context"

	"github.com/toyesterday/agenda/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByClient(ctx context.Context, clientID int64) ([]*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
