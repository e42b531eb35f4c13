package cancel_allocation

import "context"

type AllocationsService interface {
	Cancel(ctx context.Context, allocationID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
