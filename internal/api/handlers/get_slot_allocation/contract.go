package get_slot_allocation

import (
	"context"
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/service/allocations/models"
)

type AllocationsService interface {
	GetForSlotAndDate(ctx context.Context, slotID int64, date time.Time) (*models.AllocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
