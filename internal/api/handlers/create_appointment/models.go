package create_appointment

import (
	"time"

	createAppointment "github.com/toyesterday/agenda/internal/usecase/create_appointment"
)

// ServiceInput выбранная услуга в HTTP запросе
type ServiceInput struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProfessionalID int64          `json:"professionalId"`
	Services       []ServiceInput `json:"services"`
	StartTime      string         `json:"startTime"` // RFC3339
	ClientName     string         `json:"clientName"`
	ClientPhone    string         `json:"clientPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                int64   `json:"id"`
	ProfessionalID    int64   `json:"professionalId"`
	ClientID          int64   `json:"clientId"`
	ServiceName       string  `json:"serviceName"`
	Price             float64 `json:"price"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	Status            string  `json:"status"`
	CancellationToken string  `json:"cancellationToken"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (createAppointment.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return createAppointment.Request{}, err
	}

	services := make([]createAppointment.ServiceInput, 0, len(r.Services))
	for _, svc := range r.Services {
		services = append(services, createAppointment.ServiceInput{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	return createAppointment.Request{
		ProfessionalID: r.ProfessionalID,
		Services:       services,
		StartTime:      startTime,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                resp.AppointmentID,
		ProfessionalID:    resp.ProfessionalID,
		ClientID:          resp.ClientID,
		ServiceName:       resp.ServiceName,
		Price:             resp.Price,
		StartTime:         resp.StartTime.Format(time.RFC3339),
		EndTime:           resp.EndTime.Format(time.RFC3339),
		Status:            resp.Status,
		CancellationToken: resp.CancellationToken,
	}
}
