package cancel_appointment

import (
	"time"

	"github.com/toyesterday/agenda/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationToken string `json:"cancellationToken"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             int64    `json:"id"`
	ProfessionalID int64    `json:"professionalId"`
	ServiceName    string   `json:"serviceName"`
	Price          *float64 `json:"price,omitempty"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Status         string   `json:"status"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		ProfessionalID: resp.ProfessionalID,
		ServiceName:    resp.ServiceName,
		Price:          resp.Price,
		StartTime:      resp.StartTime.Format(time.RFC3339),
		EndTime:        resp.EndTime.Format(time.RFC3339),
		Status:         resp.Status,
	}
}
