package availability

import (
	"context"
	"time"
)

// Noop заглушка кеша, используется когда Redis отключён в конфигурации
type Noop struct{}

// NewNoop создает заглушку кеша
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(ctx context.Context, professionalID int64, date string, durationMinutes int) ([]time.Time, bool) {
	return nil, false
}

func (n *Noop) Set(ctx context.Context, professionalID int64, date string, durationMinutes int, times []time.Time) {
}

func (n *Noop) Invalidate(ctx context.Context, professionalID int64, date string) {}
