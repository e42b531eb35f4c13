package compute_occupancy

import (
	"context"
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SessionSlot, error)
}

// SubscriptionRepository интерфейс журнала подписок (read-only)
type SubscriptionRepository interface {
	GetBySlotID(ctx context.Context, slotID int64) ([]*domain.MembershipSubscription, error)
}

// TrialRepository интерфейс журнала пробных занятий (read-only)
type TrialRepository interface {
	GetBySlotAndDate(ctx context.Context, slotID int64, date time.Time) ([]*domain.TrialBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
