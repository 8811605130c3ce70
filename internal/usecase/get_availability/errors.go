package get_availability

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден.
	// Это ошибка, в отличие от "мастер есть, но расписание не настроено" -
	// тот случай даёт пустой список слотов.
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrBusinessNotFound возвращается, когда профиль бизнеса не найден
	ErrBusinessNotFound = errors.New("business profile not found")

	// ErrInvalidTimezone возвращается при некорректном часовом поясе в профиле
	ErrInvalidTimezone = errors.New("invalid business timezone")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
