package loyalty

import (
	"context"

	"github.com/toyesterday/agenda/internal/domain"
)

// LoyaltyRepository интерфейс хранилища счётчиков лояльности
type LoyaltyRepository interface {
	// Accrue атомарно инкрементирует счётчик и возвращает новое значение;
	// 0 означает, что порог достигнут и счётчик сброшен
	Accrue(ctx context.Context, clientID int64, key domain.ServiceKey) (int, error)
	// Deduct атомарно декрементирует счётчик, не опускаясь ниже нуля
	Deduct(ctx context.Context, clientID int64, key domain.ServiceKey) error
	// GetByClient возвращает все счётчики клиента
	GetByClient(ctx context.Context, clientID int64) (map[domain.ServiceKey]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
