package domain

import "time"

// AppointmentStatus статус записи клиента
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid проверяет, что статус входит в допустимый набор
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment запись клиента к мастеру.
// StartTime и EndTime хранятся в UTC; EndTime = StartTime + суммарная
// длительность выбранных услуг.
type Appointment struct {
	ID             int64
	BusinessID     int64
	ProfessionalID int64
	ClientID       int64

	// ServiceName может содержать несколько услуг через запятую
	// при мульти-сервисной записи
	ServiceName string
	Price       *float64

	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus

	// CancellationToken непрозрачный токен для публичной самостоятельной отмены
	CancellationToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBusy возвращает true, если запись занимает время в расписании.
// Отменённые записи освобождают слот, завершённые продолжают его занимать.
func (a *Appointment) IsBusy() bool {
	return a.Status == StatusConfirmed || a.Status == StatusCompleted
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// Interval возвращает занимаемый записью UTC-интервал
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// BusyStatuses статусы, при которых запись учитывается при расчёте доступности
var BusyStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
}
