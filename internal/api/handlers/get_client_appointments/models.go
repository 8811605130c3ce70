package get_client_appointments

import (
	"time"

	"github.com/toyesterday/agenda/internal/service/appointments/models"
)

// AppointmentResponse HTTP модель записи в истории клиента
type AppointmentResponse struct {
	ID             int64    `json:"id"`
	ProfessionalID int64    `json:"professionalId"`
	ServiceName    string   `json:"serviceName"`
	Price          *float64 `json:"price,omitempty"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
}

// ClientAppointmentsResponse HTTP response model
type ClientAppointmentsResponse struct {
	ClientID     int64                  `json:"clientId"`
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует список сервисных моделей в HTTP response
func FromServiceResponse(clientID int64, list []*models.AppointmentResponse) *ClientAppointmentsResponse {
	appointments := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		appointments = append(appointments, &AppointmentResponse{
			ID:             a.ID,
			ProfessionalID: a.ProfessionalID,
			ServiceName:    a.ServiceName,
			Price:          a.Price,
			StartTime:      a.StartTime.Format(time.RFC3339),
			EndTime:        a.EndTime.Format(time.RFC3339),
			Status:         a.Status,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ClientAppointmentsResponse{
		ClientID:     clientID,
		Appointments: appointments,
	}
}
