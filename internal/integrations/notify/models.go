package notify

import "time"

// Тип события записи
const (
	EventAppointmentCreated   = "appointment.created"
	EventAppointmentCancelled = "appointment.cancelled"
	EventAppointmentCompleted = "appointment.completed"
)

// AppointmentEvent событие записи, отправляемое в шлюз уведомлений
// (WhatsApp/Telegram). Шлюз сам решает, какой канал использовать.
type AppointmentEvent struct {
	Type           string    `json:"type"`
	AppointmentID  int64     `json:"appointmentId"`
	BusinessID     int64     `json:"businessId"`
	ProfessionalID int64     `json:"professionalId"`
	ClientID       int64     `json:"clientId"`
	ServiceName    string    `json:"serviceName"`
	StartTime      time.Time `json:"startTime"`
	RewardGranted  bool      `json:"rewardGranted,omitempty"`
}
