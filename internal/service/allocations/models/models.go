package models

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// AllocationResponse ответ с данными назначения плана
type AllocationResponse struct {
	ID            int64   `json:"id"`
	SessionPlanID int64   `json:"sessionPlanId"`
	SlotID        int64   `json:"slotId"`
	Date          string  `json:"date"` // "2026-02-20"
	Status        string  `json:"status"`
	CancelledAt   *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AllocationListResponse ответ со списком назначений
type AllocationListResponse struct {
	Allocations []AllocationResponse `json:"allocations"`
}

// FromDomainAllocation конвертирует domain модель в DTO
func FromDomainAllocation(a *domain.SessionPlanAllocation) *AllocationResponse {
	if a == nil {
		return nil
	}

	resp := &AllocationResponse{
		ID:            a.ID,
		SessionPlanID: a.SessionPlanID,
		SlotID:        a.SlotID,
		Date:          a.Date.Format(domain.DateFormat),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAllocationList конвертирует список domain моделей в DTO
func FromDomainAllocationList(allocations []*domain.SessionPlanAllocation) *AllocationListResponse {
	resp := &AllocationListResponse{
		Allocations: make([]AllocationResponse, 0, len(allocations)),
	}

	for _, alloc := range allocations {
		if allocResp := FromDomainAllocation(alloc); allocResp != nil {
			resp.Allocations = append(resp.Allocations, *allocResp)
		}
	}

	return resp
}
