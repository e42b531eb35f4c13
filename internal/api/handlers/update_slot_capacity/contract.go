package update_slot_capacity

import (
	"context"

	"github.com/m04kA/YSM-SchedulingService/internal/service/slots/models"
)

type SlotsService interface {
	UpdateCapacity(ctx context.Context, slotID int64, req *models.UpdateCapacityRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
