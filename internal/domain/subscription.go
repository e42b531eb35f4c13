package domain

import "time"

// SubscriptionStatus represents the lifecycle status of a membership subscription
type SubscriptionStatus string

const (
	SubscriptionStatusScheduled SubscriptionStatus = "scheduled"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// MembershipSubscription is a member's occupancy of a slot over an inclusive
// date range. Owned by the membership core; this service reads it only.
type MembershipSubscription struct {
	ID        int64
	MemberID  int64
	SlotID    int64
	Status    SubscriptionStatus
	StartDate time.Time // inclusive
	EndDate   time.Time // inclusive
	CreatedAt time.Time // FIFO tie-break key for the exception tier

	UpdatedAt time.Time
}

// CoversDate returns true if the inclusive date range covers the given date
func (s *MembershipSubscription) CoversDate(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(s.StartDate)) && !d.After(NormalizeDate(s.EndDate))
}

// IsActiveOn returns true if the subscription occupies a seat on the given date
func (s *MembershipSubscription) IsActiveOn(date time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.CoversDate(date)
}

// IsUpcoming returns true if the subscription has not started yet as of the
// given date: either explicitly scheduled, or active with a future start
func (s *MembershipSubscription) IsUpcoming(date time.Time) bool {
	if s.Status == SubscriptionStatusScheduled {
		return true
	}
	return s.Status == SubscriptionStatusActive && NormalizeDate(s.StartDate).After(NormalizeDate(date))
}

// NormalizeDate drops the time-of-day component, keeping the calendar date in UTC
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
