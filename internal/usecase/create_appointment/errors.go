package create_appointment

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")
	// ErrProfessionalNotFound мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")
	// ErrBusinessNotFound салон не найден
	ErrBusinessNotFound = errors.New("business not found")
	// ErrInvalidTimezone невалидный часовой пояс салона
	ErrInvalidTimezone = errors.New("invalid business timezone")
	// ErrStartTimeInPast время начала записи в прошлом
	ErrStartTimeInPast = errors.New("start time is in the past")
	// ErrSlotNotAvailable слот уже занят другой записью или блокировкой
	ErrSlotNotAvailable = errors.New("slot is not available")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
