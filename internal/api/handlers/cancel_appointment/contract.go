package cancel_appointment

import (
	"context"

	"github.com/toyesterday/agenda/internal/service/appointments/models"
)

type AppointmentService interface {
	CancelByToken(ctx context.Context, appointmentID int64, token string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
