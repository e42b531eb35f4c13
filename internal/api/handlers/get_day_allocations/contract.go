package get_day_allocations

import (
	"context"
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/service/allocations/models"
)

type AllocationsService interface {
	GetForDate(ctx context.Context, date time.Time) (*models.AllocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
