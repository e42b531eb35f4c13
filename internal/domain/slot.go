package domain

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/pkg/types"
)

// SessionSlot represents a recurring named time window (e.g. "7am batch")
// with a fixed regular capacity and an additional exception (overflow) tier.
// Slots are never hard-deleted, only deactivated: historical subscriptions
// and plan allocations keep referencing them.
type SessionSlot struct {
	ID                int64
	DisplayName       string
	StartTime         types.TimeString
	EndTime           types.TimeString
	RegularCapacity   int
	ExceptionCapacity int
	IsActive          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalCapacity returns regular plus exception capacity
func (s *SessionSlot) TotalCapacity() int {
	return s.RegularCapacity + s.ExceptionCapacity
}

// HasExceptionCapacity returns true if the slot has an overflow tier
func (s *SessionSlot) HasExceptionCapacity() bool {
	return s.ExceptionCapacity > 0
}

// HasValidCapacity returns true if the regular capacity is usable for
// occupancy math (UpdateCapacity forbids anything else, but the calculator
// defends against bad rows anyway)
func (s *SessionSlot) HasValidCapacity() bool {
	return s.RegularCapacity >= MinRegularCapacity
}
