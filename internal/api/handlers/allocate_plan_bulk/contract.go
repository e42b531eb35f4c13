package allocate_plan_bulk

import (
	"context"

	allocatePlanToAll "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan_to_all"
)

type AllocatePlanToAllUseCase interface {
	Execute(ctx context.Context, req *allocatePlanToAll.Request) (*allocatePlanToAll.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
