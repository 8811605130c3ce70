package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	// (или токен отмены не подошёл)
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrInvalidStatus возвращается при недопустимом целевом статусе
	ErrInvalidStatus = errors.New("appointments.service: invalid status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
