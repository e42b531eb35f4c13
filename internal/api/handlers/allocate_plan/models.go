package allocate_plan

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	allocatePlan "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan"
)

// AllocatePlanRequest HTTP request model
type AllocatePlanRequest struct {
	SessionPlanID int64  `json:"sessionPlanId"`
	SlotID        int64  `json:"slotId"`
	Date          string `json:"date"` // "2026-02-20"
}

// AllocationResponse HTTP response model
type AllocationResponse struct {
	ID            int64  `json:"id"`
	SessionPlanID int64  `json:"sessionPlanId"`
	SlotID        int64  `json:"slotId"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocatePlan.Response) *AllocationResponse {
	return &AllocationResponse{
		ID:            resp.ID,
		SessionPlanID: resp.SessionPlanID,
		SlotID:        resp.SlotID,
		Date:          resp.Date.Format(domain.DateFormat),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func ToUseCaseRequest(userID int64, req *AllocatePlanRequest) (*allocatePlan.Request, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, err
	}

	return &allocatePlan.Request{
		UserID:        userID,
		SessionPlanID: req.SessionPlanID,
		SlotID:        req.SlotID,
		Date:          date,
	}, nil
}
