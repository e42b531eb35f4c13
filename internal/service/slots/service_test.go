package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/slot"
	"github.com/m04kA/YSM-SchedulingService/internal/service/slots/models"
	"github.com/m04kA/YSM-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	byID        map[int64]*domain.SessionSlot
	active      []*domain.SessionSlot
	deactivated []int64
	nextID      int64
}

func (s *stubRepo) Create(_ context.Context, slot *domain.SessionSlot) (*domain.SessionSlot, error) {
	s.nextID++
	created := *slot
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.SessionSlot, error) {
	slot, ok := s.byID[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return slot, nil
}

func (s *stubRepo) GetActive(context.Context) ([]*domain.SessionSlot, error) {
	return s.active, nil
}

func (s *stubRepo) UpdateCapacity(_ context.Context, id int64, regular, exception int) (*domain.SessionSlot, error) {
	slot, ok := s.byID[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	updated := *slot
	updated.RegularCapacity = regular
	updated.ExceptionCapacity = exception
	updated.UpdatedAt = time.Now()
	return &updated, nil
}

func (s *stubRepo) Deactivate(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.deactivated = append(s.deactivated, id)
	return nil
}

func testSlot(id int64) *domain.SessionSlot {
	start, _ := types.NewTimeStringFromString("07:00")
	end, _ := types.NewTimeStringFromString("08:00")
	return &domain.SessionSlot{
		ID:                id,
		DisplayName:       "Morning 07:00",
		StartTime:         start,
		EndTime:           end,
		RegularCapacity:   10,
		ExceptionCapacity: 2,
		IsActive:          true,
	}
}

func TestCreate_Success(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		DisplayName:       "Morning 07:00",
		StartTime:         "07:00",
		EndTime:           "08:00",
		RegularCapacity:   10,
		ExceptionCapacity: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 12, resp.TotalCapacity)
	assert.True(t, resp.IsActive)
}

func TestCreate_InvalidTimes(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	cases := []struct {
		name       string
		start, end string
	}{
		{"bad format", "7am", "08:00"},
		{"start after end", "09:00", "08:00"},
		{"start equals end", "08:00", "08:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
				DisplayName:     "Test",
				StartTime:       tc.start,
				EndTime:         tc.end,
				RegularCapacity: 10,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateCapacity_Success(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.SessionSlot{1: testSlot(1)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateCapacity(context.Background(), 1, &models.UpdateCapacityRequest{
		RegularCapacity:   8,
		ExceptionCapacity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, resp.RegularCapacity)
	assert.Equal(t, 3, resp.ExceptionCapacity)
	assert.Equal(t, 11, resp.TotalCapacity)
}

func TestUpdateCapacity_Validation(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.SessionSlot{1: testSlot(1)}}
	svc := NewService(repo, nopLogger{})

	cases := []struct {
		name               string
		regular, exception int
	}{
		{"zero regular", 0, 2},
		{"negative regular", -1, 2},
		{"negative exception", 10, -1},
		{"regular above limit", domain.MaxRegularCapacity + 1, 0},
		{"exception above limit", 10, domain.MaxExceptionCapacity + 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpdateCapacity(context.Background(), 1, &models.UpdateCapacityRequest{
				RegularCapacity:   tc.regular,
				ExceptionCapacity: tc.exception,
			})
			assert.ErrorIs(t, err, ErrInvalidCapacity)
		})
	}
}

func TestUpdateCapacity_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{byID: map[int64]*domain.SessionSlot{}}, nopLogger{})

	_, err := svc.UpdateCapacity(context.Background(), 99, &models.UpdateCapacityRequest{
		RegularCapacity:   8,
		ExceptionCapacity: 0,
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDeactivate(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.SessionSlot{1: testSlot(1)}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Deactivate(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deactivated)

	assert.ErrorIs(t, svc.Deactivate(context.Background(), 99), ErrSlotNotFound)
}

func TestGetActive(t *testing.T) {
	repo := &stubRepo{active: []*domain.SessionSlot{testSlot(1), testSlot(2)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{byID: map[int64]*domain.SessionSlot{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
