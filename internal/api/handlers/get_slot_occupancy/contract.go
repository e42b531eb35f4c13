package get_slot_occupancy

import (
	"context"

	computeOccupancy "github.com/m04kA/YSM-SchedulingService/internal/usecase/compute_occupancy"
)

type ComputeOccupancyUseCase interface {
	Execute(ctx context.Context, req *computeOccupancy.Request) (*computeOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
