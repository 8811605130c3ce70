package loyalty

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент для начисления не существует
	ErrClientNotFound = errors.New("loyalty.repository: client not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("loyalty.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("loyalty.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("loyalty.repository: failed to scan row")
)
