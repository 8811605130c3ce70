package blockedslots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда указанный мастер не найден
	ErrProfessionalNotFound = errors.New("blockedslots.service: professional not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blockedslots.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blockedslots.service: internal error")
)
