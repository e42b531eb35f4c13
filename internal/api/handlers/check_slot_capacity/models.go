package check_slot_capacity

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	checkCapacity "github.com/m04kA/YSM-SchedulingService/internal/usecase/check_capacity"
)

// CapacityCheckResponse HTTP response model
type CapacityCheckResponse struct {
	SlotID          int64  `json:"slotId"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Available       bool   `json:"available"`
	IsExceptionOnly bool   `json:"isExceptionOnly"`
	CurrentBookings int    `json:"currentBookings"`
	NormalCapacity  int    `json:"normalCapacity"`
	TotalCapacity   int    `json:"totalCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(slotID int64, startDate, endDate time.Time, resp *checkCapacity.Response) *CapacityCheckResponse {
	return &CapacityCheckResponse{
		SlotID:          slotID,
		StartDate:       startDate.Format(domain.DateFormat),
		EndDate:         endDate.Format(domain.DateFormat),
		Available:       resp.Available,
		IsExceptionOnly: resp.IsExceptionOnly,
		CurrentBookings: resp.CurrentBookings,
		NormalCapacity:  resp.NormalCapacity,
		TotalCapacity:   resp.TotalCapacity,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(slotID int64, startDateStr, endDateStr string) (*checkCapacity.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &checkCapacity.Request{
		SlotID:    slotID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
