package get_slots

import (
	"context"

	"github.com/m04kA/YSM-SchedulingService/internal/service/slots/models"
)

type SlotsService interface {
	GetActive(ctx context.Context) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
