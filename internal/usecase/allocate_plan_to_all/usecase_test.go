package allocate_plan_to_all

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	planClient "github.com/m04kA/YSM-SchedulingService/internal/integrations/plancatalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubAllocationRepo struct {
	nextID  int64
	created []*domain.SessionPlanAllocation
}

func (s *stubAllocationRepo) Create(_ context.Context, alloc *domain.SessionPlanAllocation) (*domain.SessionPlanAllocation, error) {
	s.nextID++
	created := *alloc
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = append(s.created, &created)
	return &created, nil
}

func (s *stubAllocationRepo) CancelScheduledBySlotAndDate(context.Context, int64, time.Time) error {
	return nil
}

type stubSlotRepo struct {
	slots []*domain.SessionSlot
}

func (s *stubSlotRepo) GetActive(context.Context) ([]*domain.SessionSlot, error) {
	return s.slots, nil
}

type stubPlanClient struct {
	plan *planClient.SessionPlan
	err  error
}

func (s *stubPlanClient) GetPlan(context.Context, int64) (*planClient.SessionPlan, error) {
	return s.plan, s.err
}

type stubSessionLog struct {
	executedSlots map[int64]bool
}

func (s *stubSessionLog) HasExecution(_ context.Context, slotID int64, _ time.Time) (bool, error) {
	return s.executedSlots[slotID], nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func activeSlots(n int) []*domain.SessionSlot {
	slots := make([]*domain.SessionSlot, 0, n)
	for i := 1; i <= n; i++ {
		slots = append(slots, &domain.SessionSlot{
			ID:              int64(i),
			RegularCapacity: 10,
			IsActive:        true,
		})
	}
	return slots
}

func TestExecute_AllocatesToEveryActiveSlot(t *testing.T) {
	allocRepo := &stubAllocationRepo{}
	uc := NewUseCase(
		allocRepo,
		&stubSlotRepo{slots: activeSlots(4)},
		&stubPlanClient{plan: &planClient.SessionPlan{ID: 1, Title: "Endurance"}},
		&stubSessionLog{executedSlots: map[int64]bool{}},
		passthroughTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        7,
		SessionPlanID: 1,
		Date:          time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Allocations, 4)
	assert.Empty(t, resp.SkippedSlotIDs)

	for i, alloc := range resp.Allocations {
		assert.Equal(t, int64(i+1), alloc.SlotID)
		assert.Equal(t, string(domain.AllocationStatusScheduled), alloc.Status)
	}
}

func TestExecute_SkipsExecutedSlots(t *testing.T) {
	uc := NewUseCase(
		&stubAllocationRepo{},
		&stubSlotRepo{slots: activeSlots(3)},
		&stubPlanClient{plan: &planClient.SessionPlan{ID: 1}},
		&stubSessionLog{executedSlots: map[int64]bool{2: true}},
		passthroughTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionPlanID: 1,
		Date:          time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Слот с проведённым занятием пропускается: менять план задним числом нельзя
	require.Len(t, resp.Allocations, 2)
	assert.Equal(t, []int64{2}, resp.SkippedSlotIDs)
}

func TestExecute_PlanNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubAllocationRepo{},
		&stubSlotRepo{slots: activeSlots(1)},
		&stubPlanClient{err: planClient.ErrPlanNotFound},
		&stubSessionLog{},
		passthroughTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		SessionPlanID: 99,
		Date:          time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestExecute_NoActiveSlots(t *testing.T) {
	uc := NewUseCase(
		&stubAllocationRepo{},
		&stubSlotRepo{slots: nil},
		&stubPlanClient{plan: &planClient.SessionPlan{ID: 1}},
		&stubSessionLog{},
		passthroughTxManager{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionPlanID: 1,
		Date:          time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Allocations)
	assert.Empty(t, resp.SkippedSlotIDs)
}
