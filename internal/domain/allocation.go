package domain

import "time"

// AllocationStatus represents the status of a session-plan allocation
type AllocationStatus string

const (
	AllocationStatusScheduled AllocationStatus = "scheduled"
	AllocationStatusCancelled AllocationStatus = "cancelled"
)

// SessionPlanAllocation assigns a reusable session-plan template to a slot on
// a specific date. Replacement is cancel-then-allocate, never an in-place
// edit: cancelled records are retained for the audit trail.
//
// Invariant (enforced by a unique partial index in storage): for a given
// (SlotID, Date) at most one allocation with status = scheduled exists.
type SessionPlanAllocation struct {
	ID            int64
	SessionPlanID int64
	SlotID        int64
	Date          time.Time
	Status        AllocationStatus
	CancelledAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled returns true if the allocation is the current one for its key
func (a *SessionPlanAllocation) IsScheduled() bool {
	return a.Status == AllocationStatusScheduled
}

// IsCancelled returns true if the allocation has been cancelled
func (a *SessionPlanAllocation) IsCancelled() bool {
	return a.Status == AllocationStatusCancelled
}
