package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSlot(regular, exception int) *SessionSlot {
	return &SessionSlot{
		ID:                1,
		DisplayName:       "Morning 07:00",
		RegularCapacity:   regular,
		ExceptionCapacity: exception,
		IsActive:          true,
	}
}

func activeSub(id, memberID int64, start, end, createdAt time.Time) *MembershipSubscription {
	return &MembershipSubscription{
		ID:        id,
		MemberID:  memberID,
		SlotID:    1,
		Status:    SubscriptionStatusActive,
		StartDate: start,
		EndDate:   end,
		CreatedAt: createdAt,
	}
}

func TestComputeOccupancy_UnderRegularCapacity(t *testing.T) {
	slot := testSlot(10, 2)
	ref := date(2026, 3, 15)

	subs := make([]*MembershipSubscription, 0, 8)
	for i := int64(1); i <= 8; i++ {
		subs = append(subs, activeSub(i, 100+i,
			date(2026, 3, 1), date(2026, 3, 31),
			date(2026, 2, 1).Add(time.Duration(i)*time.Hour)))
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 0)
	require.NoError(t, err)

	assert.Equal(t, 8, snapshot.TotalBooked)
	assert.Equal(t, 8, snapshot.ActiveCount)
	assert.Equal(t, 0, snapshot.NewScheduledCount)
	assert.Equal(t, 2, snapshot.Available)
	assert.False(t, snapshot.IsOverbooked)
	assert.Equal(t, 0, snapshot.ExceptionCount)
	assert.Empty(t, snapshot.ExceptionMemberIDs)
	require.NotNil(t, snapshot.UtilizationPercent)
	assert.Equal(t, 80, *snapshot.UtilizationPercent)
}

func TestComputeOccupancy_ExceptionTierFIFO(t *testing.T) {
	slot := testSlot(10, 2)
	ref := date(2026, 3, 15)

	// 12 активных: последние двое по времени создания уходят в exception
	subs := make([]*MembershipSubscription, 0, 12)
	for i := int64(1); i <= 12; i++ {
		subs = append(subs, activeSub(i, 100+i,
			date(2026, 3, 1), date(2026, 3, 31),
			date(2026, 2, 1).Add(time.Duration(i)*time.Hour)))
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 0)
	require.NoError(t, err)

	assert.Equal(t, 12, snapshot.TotalBooked)
	assert.Equal(t, 10, snapshot.RegularCount)
	assert.Equal(t, 2, snapshot.ExceptionCount)
	assert.Equal(t, []int64{111, 112}, snapshot.ExceptionMemberIDs)
	assert.True(t, snapshot.IsOverbooked)
	assert.Equal(t, 2, snapshot.OverbookedBy)
	assert.Equal(t, 0, snapshot.Available)
	require.NotNil(t, snapshot.UtilizationPercent)
	assert.Equal(t, 120, *snapshot.UtilizationPercent)
}

func TestComputeOccupancy_ExceptionTierTieBreakByID(t *testing.T) {
	slot := testSlot(2, 1)
	ref := date(2026, 3, 15)
	createdAt := date(2026, 2, 1)

	// Одинаковый createdAt: при равенстве решает меньший id,
	// в exception попадает подписка с наибольшим id
	subs := []*MembershipSubscription{
		activeSub(3, 103, date(2026, 3, 1), date(2026, 3, 31), createdAt),
		activeSub(1, 101, date(2026, 3, 1), date(2026, 3, 31), createdAt),
		activeSub(2, 102, date(2026, 3, 1), date(2026, 3, 31), createdAt),
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 0)
	require.NoError(t, err)

	assert.Equal(t, []int64{103}, snapshot.ExceptionMemberIDs)
}

func TestComputeOccupancy_RenewalNotDoubleCounted(t *testing.T) {
	slot := testSlot(10, 2)
	ref := date(2026, 3, 15)

	// Участник M: активная подписка до 31 марта и scheduled-продление
	// с 1 апреля на тот же слот. Считается один раз
	subs := []*MembershipSubscription{
		activeSub(1, 500, date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 1)),
		{
			ID:        2,
			MemberID:  500,
			SlotID:    1,
			Status:    SubscriptionStatusScheduled,
			StartDate: date(2026, 4, 1),
			EndDate:   date(2026, 4, 30),
			CreatedAt: date(2026, 3, 10),
		},
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.ActiveCount)
	assert.Equal(t, 0, snapshot.NewScheduledCount)
	assert.Equal(t, 1, snapshot.TotalBooked)
}

func TestComputeOccupancy_NewMemberScheduledCounts(t *testing.T) {
	slot := testSlot(10, 2)
	ref := date(2026, 3, 15)

	subs := []*MembershipSubscription{
		activeSub(1, 500, date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 1)),
		// Новый участник со scheduled-подпиской: занимает место заранее
		{
			ID:        2,
			MemberID:  600,
			SlotID:    1,
			Status:    SubscriptionStatusScheduled,
			StartDate: date(2026, 4, 1),
			EndDate:   date(2026, 4, 30),
			CreatedAt: date(2026, 3, 10),
		},
		// Активная подписка с будущим стартом тоже считается новой записью
		activeSub(3, 700, date(2026, 3, 20), date(2026, 4, 19), date(2026, 3, 12)),
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.ActiveCount)
	assert.Equal(t, 2, snapshot.NewScheduledCount)
	assert.Equal(t, 3, snapshot.TotalBooked)
}

func TestComputeOccupancy_ExpiredAndCancelledIgnored(t *testing.T) {
	slot := testSlot(10, 2)
	ref := date(2026, 3, 15)

	subs := []*MembershipSubscription{
		{
			ID: 1, MemberID: 101, SlotID: 1,
			Status:    SubscriptionStatusExpired,
			StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 31),
			CreatedAt: date(2025, 12, 1),
		},
		{
			ID: 2, MemberID: 102, SlotID: 1,
			Status:    SubscriptionStatusCancelled,
			StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 31),
			CreatedAt: date(2026, 2, 1),
		},
		// Активная, но диапазон не покрывает дату
		activeSub(3, 103, date(2026, 4, 1), date(2026, 4, 30), date(2026, 2, 1)),
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot.ActiveCount)
	// Активная с будущим стартом - новая запись
	assert.Equal(t, 1, snapshot.NewScheduledCount)
	assert.Equal(t, 1, snapshot.TotalBooked)
}

func TestComputeOccupancy_OtherSlotSubscriptionsFiltered(t *testing.T) {
	slot := testSlot(10, 2)
	ref := date(2026, 3, 15)

	other := activeSub(1, 101, date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 1))
	other.SlotID = 99

	snapshot, err := ComputeOccupancy(slot, ref, []*MembershipSubscription{other}, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot.TotalBooked)
	assert.Equal(t, 10, snapshot.Available)
}

func TestComputeOccupancy_BoundaryDatesInclusive(t *testing.T) {
	slot := testSlot(10, 2)
	sub := activeSub(1, 101, date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 1))

	for _, ref := range []time.Time{date(2026, 3, 1), date(2026, 3, 31)} {
		snapshot, err := ComputeOccupancy(slot, ref, []*MembershipSubscription{sub}, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, snapshot.ActiveCount, "date %s", ref.Format(DateFormat))
	}

	snapshot, err := ComputeOccupancy(slot, date(2026, 4, 1), []*MembershipSubscription{sub}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.ActiveCount)
}

func TestComputeOccupancy_TrialCountInformational(t *testing.T) {
	slot := testSlot(2, 0)
	ref := date(2026, 3, 15)

	subs := []*MembershipSubscription{
		activeSub(1, 101, date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 1)),
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 5)
	require.NoError(t, err)

	// Пробные занятия отображаются, но на занятость не влияют
	assert.Equal(t, 5, snapshot.TrialCount)
	assert.Equal(t, 1, snapshot.TotalBooked)
	assert.Equal(t, 1, snapshot.Available)
	assert.False(t, snapshot.IsOverbooked)
}

func TestComputeOccupancy_InvalidRegularCapacity(t *testing.T) {
	ref := date(2026, 3, 15)
	subs := []*MembershipSubscription{
		activeSub(1, 101, date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 1)),
	}

	for _, regular := range []int{0, -1} {
		snapshot, err := ComputeOccupancy(testSlot(regular, 2), ref, subs, 0)

		require.ErrorIs(t, err, ErrInvalidCapacityConfig)
		// Снапшот при этом рассчитан, utilization не заполнен
		require.NotNil(t, snapshot)
		assert.Equal(t, 1, snapshot.TotalBooked)
		assert.Nil(t, snapshot.UtilizationPercent)
	}
}

func TestComputeOccupancy_UtilizationRounding(t *testing.T) {
	ref := date(2026, 3, 15)

	// 1 из 3 = 33.33 -> 33; 2 из 3 = 66.67 -> 67
	cases := []struct {
		active int
		want   int
	}{
		{1, 33},
		{2, 67},
	}

	for _, tc := range cases {
		subs := make([]*MembershipSubscription, 0, tc.active)
		for i := int64(1); i <= int64(tc.active); i++ {
			subs = append(subs, activeSub(i, 100+i,
				date(2026, 3, 1), date(2026, 3, 31), date(2026, 2, 1)))
		}

		snapshot, err := ComputeOccupancy(testSlot(3, 0), ref, subs, 0)
		require.NoError(t, err)
		require.NotNil(t, snapshot.UtilizationPercent)
		assert.Equal(t, tc.want, *snapshot.UtilizationPercent)
	}
}

func TestComputeOccupancy_CountsAddUp(t *testing.T) {
	slot := testSlot(3, 1)
	ref := date(2026, 3, 15)

	subs := make([]*MembershipSubscription, 0, 5)
	for i := int64(1); i <= 5; i++ {
		subs = append(subs, activeSub(i, 100+i,
			date(2026, 3, 1), date(2026, 3, 31),
			date(2026, 2, 1).Add(time.Duration(i)*time.Minute)))
	}

	snapshot, err := ComputeOccupancy(slot, ref, subs, 0)
	require.NoError(t, err)

	assert.Equal(t, snapshot.TotalBooked, snapshot.RegularCount+snapshot.ExceptionCount)
	assert.GreaterOrEqual(t, snapshot.Available, 0)
	// Переполнение меряется только относительно регулярной вместимости,
	// даже когда все лишние помещаются в exception-уровень
	assert.True(t, snapshot.IsOverbooked)
	assert.Equal(t, 2, snapshot.OverbookedBy)
}
