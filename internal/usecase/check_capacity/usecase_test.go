package check_capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	slotStorage "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/slot"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubSlotRepo struct {
	slot *domain.SessionSlot
	err  error
}

func (s *stubSlotRepo) GetByID(context.Context, int64) (*domain.SessionSlot, error) {
	return s.slot, s.err
}

type stubSubsRepo struct {
	subs []*domain.MembershipSubscription
}

func (s *stubSubsRepo) GetBySlotID(context.Context, int64) ([]*domain.MembershipSubscription, error) {
	return s.subs, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeSubs(slotID int64, n int) []*domain.MembershipSubscription {
	subs := make([]*domain.MembershipSubscription, 0, n)
	for i := 1; i <= n; i++ {
		subs = append(subs, &domain.MembershipSubscription{
			ID:        int64(i),
			MemberID:  int64(100 + i),
			SlotID:    slotID,
			Status:    domain.SubscriptionStatusActive,
			StartDate: date(2026, 3, 1),
			EndDate:   date(2026, 3, 31),
			CreatedAt: date(2026, 2, 1),
		})
	}
	return subs
}

func request() *Request {
	return &Request{
		SlotID:    1,
		StartDate: date(2026, 3, 10),
		EndDate:   date(2026, 4, 9),
	}
}

func TestExecute_SeatsAvailable(t *testing.T) {
	slot := &domain.SessionSlot{ID: 1, RegularCapacity: 10, ExceptionCapacity: 2, IsActive: true}
	uc := NewUseCase(&stubSlotRepo{slot: slot}, &stubSubsRepo{subs: activeSubs(1, 8)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.False(t, resp.IsExceptionOnly)
	assert.Equal(t, 8, resp.CurrentBookings)
	assert.Equal(t, 10, resp.NormalCapacity)
	assert.Equal(t, 12, resp.TotalCapacity)
}

func TestExecute_ExceptionTierOnly(t *testing.T) {
	// Регулярные места заняты, но exception-вместимость ещё принимает
	slot := &domain.SessionSlot{ID: 1, RegularCapacity: 10, ExceptionCapacity: 2, IsActive: true}
	uc := NewUseCase(&stubSlotRepo{slot: slot}, &stubSubsRepo{subs: activeSubs(1, 11)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.True(t, resp.IsExceptionOnly)
	assert.Equal(t, 11, resp.CurrentBookings)
}

func TestExecute_Full(t *testing.T) {
	slot := &domain.SessionSlot{ID: 1, RegularCapacity: 10, ExceptionCapacity: 2, IsActive: true}
	uc := NewUseCase(&stubSlotRepo{slot: slot}, &stubSubsRepo{subs: activeSubs(1, 12)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.True(t, resp.IsExceptionOnly)
	assert.Equal(t, 12, resp.CurrentBookings)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{err: slotStorage.ErrSlotNotFound}, &stubSubsRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InvalidDateRange(t *testing.T) {
	slot := &domain.SessionSlot{ID: 1, RegularCapacity: 10, IsActive: true}
	uc := NewUseCase(&stubSlotRepo{slot: slot}, &stubSubsRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:    1,
		StartDate: date(2026, 3, 10),
		EndDate:   date(2026, 3, 9),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_InvalidCapacityConfigTolerated(t *testing.T) {
	// Слот с нулевой регулярной вместимостью: проверка всё равно отвечает,
	// просто свободных мест нет
	slot := &domain.SessionSlot{ID: 1, RegularCapacity: 0, ExceptionCapacity: 2, IsActive: true}
	uc := NewUseCase(&stubSlotRepo{slot: slot}, &stubSubsRepo{subs: activeSubs(1, 1)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, resp.IsExceptionOnly)
	assert.Equal(t, 1, resp.CurrentBookings)
}
