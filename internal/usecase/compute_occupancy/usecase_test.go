package compute_occupancy

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

type stubTrialRepo struct {
	trials []*domain.TrialBooking
}

func (s *stubTrialRepo) GetBySlotAndDate(context.Context, int64, time.Time) ([]*domain.TrialBooking, error) {
	return s.trials, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_SnapshotWithTrials(t *testing.T) {
	slot := &domain.SessionSlot{ID: 1, RegularCapacity: 10, ExceptionCapacity: 2, IsActive: true}
	subs := []*domain.MembershipSubscription{
		{
			ID: 1, MemberID: 101, SlotID: 1,
			Status:    domain.SubscriptionStatusActive,
			StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31),
			CreatedAt: date(2026, 2, 1),
		},
	}

	trials := []*domain.TrialBooking{
		{ID: 1, LeadID: 201, SlotID: 1, Date: date(2026, 3, 15), Status: domain.TrialStatusBooked},
		{ID: 2, LeadID: 202, SlotID: 1, Date: date(2026, 3, 15), Status: domain.TrialStatusBooked},
		{ID: 3, LeadID: 203, SlotID: 1, Date: date(2026, 3, 15), Status: domain.TrialStatusAttended},
	}

	uc := NewUseCase(
		&stubSlotRepo{slot: slot},
		&stubSubsRepo{subs: subs},
		&stubTrialRepo{trials: trials},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1, Date: date(2026, 3, 15)})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Slot.ID)
	assert.Equal(t, 1, resp.Snapshot.TotalBooked)
	// Количество пробных в снапшоте совпадает со списком, сам список
	// отдаётся для отображения рядом со снапшотом
	assert.Equal(t, 3, resp.Snapshot.TrialCount)
	require.Len(t, resp.Trials, 3)
	assert.Equal(t, int64(201), resp.Trials[0].LeadID)
	require.NotNil(t, resp.Snapshot.UtilizationPercent)
	assert.Equal(t, 10, *resp.Snapshot.UtilizationPercent)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubSlotRepo{err: slotStorage.ErrSlotNotFound},
		&stubSubsRepo{},
		&stubTrialRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{SlotID: 99, Date: date(2026, 3, 15)})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InvalidCapacityStillReturnsSnapshot(t *testing.T) {
	// Слот с некорректной вместимостью: ошибку логируем, но снапшот отдаём,
	// utilization при этом не заполнен
	slot := &domain.SessionSlot{ID: 1, RegularCapacity: 0, IsActive: true}

	uc := NewUseCase(
		&stubSlotRepo{slot: slot},
		&stubSubsRepo{},
		&stubTrialRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: 1, Date: date(2026, 3, 15)})
	require.NoError(t, err)

	require.NotNil(t, resp.Snapshot)
	assert.Nil(t, resp.Snapshot.UtilizationPercent)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{}, &stubSubsRepo{}, &stubTrialRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SlotID: 0, Date: date(2026, 3, 15)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SlotID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
