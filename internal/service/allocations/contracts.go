package allocations

import (
	"context"
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// AllocationRepository интерфейс репозитория назначений планов
type AllocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionPlanAllocation, error)
	GetScheduledBySlotAndDate(ctx context.Context, slotID int64, date time.Time) (*domain.SessionPlanAllocation, error)
	GetScheduledByDate(ctx context.Context, date time.Time) ([]*domain.SessionPlanAllocation, error)
	Cancel(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
