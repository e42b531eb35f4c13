package domain

import "time"

// SlotOccupancySnapshot is the derived occupancy summary of a slot on a
// reference date. It is recomputed on every read and never persisted.
type SlotOccupancySnapshot struct {
	SlotID        int64
	ReferenceDate time.Time

	TotalBooked       int // active occupants + new scheduled bookings
	ActiveCount       int // subscriptions covering the reference date
	NewScheduledCount int // future bookings, renewals excluded
	RegularCount      int // occupants holding a regular seat
	ExceptionCount    int // occupants spilled into the exception tier
	TrialCount        int // same-day trials, informational only

	ExceptionMemberIDs []int64 // members over the regular-capacity line, FIFO order

	Available    int  // free regular seats, never negative
	IsOverbooked bool // measured against regular capacity only
	OverbookedBy int

	// nil when the slot's regular capacity is unusable (division guard)
	UtilizationPercent *int
}

// HasExceptionOverflow returns true if any occupant sits in the exception tier
func (s *SlotOccupancySnapshot) HasExceptionOverflow() bool {
	return s.ExceptionCount > 0
}

// IsFull returns true if no regular seats remain
func (s *SlotOccupancySnapshot) IsFull() bool {
	return s.Available == 0
}
