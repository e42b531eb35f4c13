package domain

import "time"

// TrialStatus represents the status of a trial booking
type TrialStatus string

const (
	TrialStatusBooked    TrialStatus = "booked"
	TrialStatusAttended  TrialStatus = "attended"
	TrialStatusNoShow    TrialStatus = "no_show"
	TrialStatusCancelled TrialStatus = "cancelled"
)

// TrialBooking is a one-off trial attendance of a lead, tied to a slot and a
// specific date. Owned by the leads core; reported alongside member occupancy
// but never counted against capacity.
type TrialBooking struct {
	ID     int64
	LeadID int64
	SlotID int64
	Date   time.Time
	Status TrialStatus

	CreatedAt time.Time
}

// IsCancelled returns true if the trial booking was cancelled
func (t *TrialBooking) IsCancelled() bool {
	return t.Status == TrialStatusCancelled
}
