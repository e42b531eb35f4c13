package allocate_plan

import (
	"context"

	allocatePlan "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan"
)

type AllocatePlanUseCase interface {
	Execute(ctx context.Context, req *allocatePlan.Request) (*allocatePlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
