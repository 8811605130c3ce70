package notify

import "errors"

var (
	// ErrInvalidResponse возвращается при некорректном ответе шлюза уведомлений
	ErrInvalidResponse = errors.New("notify.client: invalid gateway response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notify.client: internal error")
)
