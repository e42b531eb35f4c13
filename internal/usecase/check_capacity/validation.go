package check_capacity

import (
	"fmt"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if domain.NormalizeDate(req.EndDate).Before(domain.NormalizeDate(req.StartDate)) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidDateRange)
	}

	return nil
}
