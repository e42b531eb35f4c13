package allocate_plan_bulk

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	allocatePlanToAll "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan_to_all"
)

// BulkAllocateRequest HTTP request model
type BulkAllocateRequest struct {
	SessionPlanID int64  `json:"sessionPlanId"`
	Date          string `json:"date"` // "2026-02-20"
}

// BulkAllocation созданное назначение в ответе
type BulkAllocation struct {
	ID            int64  `json:"id"`
	SessionPlanID int64  `json:"sessionPlanId"`
	SlotID        int64  `json:"slotId"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// BulkAllocateResponse HTTP response model
type BulkAllocateResponse struct {
	Allocations    []BulkAllocation `json:"allocations"`
	SkippedSlotIDs []int64          `json:"skippedSlotIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocatePlanToAll.Response) *BulkAllocateResponse {
	allocations := make([]BulkAllocation, len(resp.Allocations))
	for i, alloc := range resp.Allocations {
		allocations[i] = BulkAllocation{
			ID:            alloc.ID,
			SessionPlanID: alloc.SessionPlanID,
			SlotID:        alloc.SlotID,
			Date:          alloc.Date.Format(domain.DateFormat),
			Status:        alloc.Status,
			CreatedAt:     alloc.CreatedAt.Format(time.RFC3339),
		}
	}

	skipped := resp.SkippedSlotIDs
	if skipped == nil {
		skipped = []int64{}
	}

	return &BulkAllocateResponse{
		Allocations:    allocations,
		SkippedSlotIDs: skipped,
	}
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(userID int64, req *BulkAllocateRequest) (*allocatePlanToAll.Request, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	return &allocatePlanToAll.Request{
		UserID:        userID,
		SessionPlanID: req.SessionPlanID,
		Date:          date,
	}, nil
}
