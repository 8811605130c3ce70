package models

import (
	"time"

	"github.com/toyesterday/agenda/internal/domain"
)

// AppointmentResponse модель записи для внешних слоёв
type AppointmentResponse struct {
	ID             int64
	ProfessionalID int64
	ClientID       int64
	ServiceName    string
	Price          *float64
	StartTime      time.Time
	EndTime        time.Time
	Status         string
	CreatedAt      time.Time
}

// UpdateStatusRequest запрос смены статуса записи
type UpdateStatusRequest struct {
	Status string
}

// UpdateStatusResponse результат смены статуса.
// RewardGranted заполняется только при переходе в completed.
type UpdateStatusResponse struct {
	Appointment   *AppointmentResponse
	RewardGranted *bool
}

// FromDomainAppointment конвертирует доменную запись в модель ответа
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             a.ID,
		ProfessionalID: a.ProfessionalID,
		ClientID:       a.ClientID,
		ServiceName:    a.ServiceName,
		Price:          a.Price,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(appointments []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = FromDomainAppointment(a)
	}
	return result
}

// ToDomainAppointmentStatus валидирует и конвертирует строковый статус
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, bool) {
	s := domain.AppointmentStatus(status)
	return s, s.IsValid()
}
