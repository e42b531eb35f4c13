package slots

import (
	"context"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.SessionSlot) (*domain.SessionSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.SessionSlot, error)
	GetActive(ctx context.Context) ([]*domain.SessionSlot, error)
	UpdateCapacity(ctx context.Context, id int64, regularCapacity, exceptionCapacity int) (*domain.SessionSlot, error)
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
