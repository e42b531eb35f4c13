package get_slot_allocation

import "github.com/m04kA/YSM-SchedulingService/internal/service/allocations/models"

// AllocationLookupResponse HTTP response model.
// Allocation == null, когда план на дату не назначен
type AllocationLookupResponse struct {
	Allocation *models.AllocationResponse `json:"allocation"`
}
