package allocate_plan_to_all

import (
	"context"
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	"github.com/m04kA/YSM-SchedulingService/internal/integrations/plancatalog"
)

// AllocationRepository интерфейс репозитория назначений
type AllocationRepository interface {
	Create(ctx context.Context, alloc *domain.SessionPlanAllocation) (*domain.SessionPlanAllocation, error)
	CancelScheduledBySlotAndDate(ctx context.Context, slotID int64, date time.Time) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetActive(ctx context.Context) ([]*domain.SessionSlot, error)
}

// PlanCatalogClient интерфейс клиента каталога планов занятий
type PlanCatalogClient interface {
	GetPlan(ctx context.Context, planID int64) (*plancatalog.SessionPlan, error)
}

// SessionLogClient интерфейс клиента журнала проведённых занятий
type SessionLogClient interface {
	HasExecution(ctx context.Context, slotID int64, date time.Time) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
