package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinRegularCapacity   = 1
	MaxRegularCapacity   = 200
	MinExceptionCapacity = 0
	MaxExceptionCapacity = 50
	MaxDisplayNameLength = 100
)

// CountedSubscriptionStatuses статусы подписок, участвующие в расчёте занятости
// Используется для фильтрации при загрузке журнала подписок
var CountedSubscriptionStatuses = []SubscriptionStatus{
	SubscriptionStatusScheduled,
	SubscriptionStatusActive,
}
