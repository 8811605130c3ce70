package create_appointment

import "time"

// ServiceInput выбранная клиентом услуга
type ServiceInput struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// Request запрос на создание публичной записи
type Request struct {
	ProfessionalID int64          `json:"professional_id"`
	Services       []ServiceInput `json:"services"`
	StartTime      time.Time      `json:"start_time"`
	ClientName     string         `json:"client_name"`
	ClientPhone    string         `json:"client_phone"`
}

// Response данные созданной записи
type Response struct {
	AppointmentID     int64     `json:"appointment_id"`
	ProfessionalID    int64     `json:"professional_id"`
	ClientID          int64     `json:"client_id"`
	ServiceName       string    `json:"service_name"`
	Price             float64   `json:"price"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Status            string    `json:"status"`
	CancellationToken string    `json:"cancellation_token"`
}
