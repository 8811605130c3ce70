package update_appointment_status

import (
	"time"

	"github.com/toyesterday/agenda/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model.
// RewardGranted присутствует только при переходе записи в completed.
type UpdateStatusResponse struct {
	ID             int64    `json:"id"`
	ProfessionalID int64    `json:"professionalId"`
	ClientID       int64    `json:"clientId"`
	ServiceName    string   `json:"serviceName"`
	Price          *float64 `json:"price,omitempty"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Status         string   `json:"status"`
	RewardGranted  *bool    `json:"rewardGranted,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status: r.Status,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.UpdateStatusResponse) *UpdateStatusResponse {
	appt := resp.Appointment
	return &UpdateStatusResponse{
		ID:             appt.ID,
		ProfessionalID: appt.ProfessionalID,
		ClientID:       appt.ClientID,
		ServiceName:    appt.ServiceName,
		Price:          appt.Price,
		StartTime:      appt.StartTime.Format(time.RFC3339),
		EndTime:        appt.EndTime.Format(time.RFC3339),
		Status:         appt.Status,
		RewardGranted:  resp.RewardGranted,
	}
}
