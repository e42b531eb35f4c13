package allocations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	allocationRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/allocation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	byID         map[int64]*domain.SessionPlanAllocation
	scheduled    *domain.SessionPlanAllocation
	scheduledErr error
	byDate       []*domain.SessionPlanAllocation
	cancelCalls  int
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.SessionPlanAllocation, error) {
	alloc, ok := s.byID[id]
	if !ok {
		return nil, allocationRepo.ErrAllocationNotFound
	}
	return alloc, nil
}

func (s *stubRepo) GetScheduledBySlotAndDate(context.Context, int64, time.Time) (*domain.SessionPlanAllocation, error) {
	if s.scheduledErr != nil {
		return nil, s.scheduledErr
	}
	return s.scheduled, nil
}

func (s *stubRepo) GetScheduledByDate(context.Context, time.Time) ([]*domain.SessionPlanAllocation, error) {
	return s.byDate, nil
}

func (s *stubRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return allocationRepo.ErrAllocationNotFound
	}
	s.cancelCalls++
	s.byID[id].Status = domain.AllocationStatusCancelled
	return nil
}

func scheduledAllocation(id int64) *domain.SessionPlanAllocation {
	return &domain.SessionPlanAllocation{
		ID:            id,
		SessionPlanID: 1,
		SlotID:        2,
		Date:          time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Status:        domain.AllocationStatusScheduled,
	}
}

func TestCancel_Success(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.SessionPlanAllocation{10: scheduledAllocation(10)}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestCancel_Idempotent(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.SessionPlanAllocation{10: scheduledAllocation(10)}}
	svc := NewService(repo, nopLogger{})

	// Повторная отмена уже отменённого назначения - no-op без ошибки
	require.NoError(t, svc.Cancel(context.Background(), 10))
	require.NoError(t, svc.Cancel(context.Background(), 10))

	assert.Equal(t, 1, repo.cancelCalls)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{byID: map[int64]*domain.SessionPlanAllocation{}}, nopLogger{})

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAllocationNotFound)
}

func TestGetForSlotAndDate_Found(t *testing.T) {
	repo := &stubRepo{scheduled: scheduledAllocation(10)}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetForSlotAndDate(context.Background(), 2, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2026-02-20", resp.Date)
	assert.Equal(t, string(domain.AllocationStatusScheduled), resp.Status)
}

func TestGetForSlotAndDate_NotAllocated(t *testing.T) {
	// Отсутствие назначения - не ошибка, отдаём nil
	repo := &stubRepo{scheduledErr: allocationRepo.ErrAllocationNotFound}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetForSlotAndDate(context.Background(), 2, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetForDate(t *testing.T) {
	repo := &stubRepo{byDate: []*domain.SessionPlanAllocation{
		scheduledAllocation(1),
		scheduledAllocation(2),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetForDate(context.Background(), time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, resp.Allocations, 2)
}
