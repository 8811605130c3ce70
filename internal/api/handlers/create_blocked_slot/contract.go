package create_blocked_slot

import (
	"context"

	"github.com/toyesterday/agenda/internal/domain"
)

type BlockedSlotService interface {
	Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
