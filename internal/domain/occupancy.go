package domain

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/m04kA/YSM-SchedulingService/pkg/ptr"
)

// ErrInvalidCapacityConfig возвращается, когда у слота некорректная
// регулярная вместимость (< 1). Снапшот при этом всё равно вычисляется,
// но utilization остаётся незаполненным
var ErrInvalidCapacityConfig = errors.New("slot has invalid regular capacity")

// ComputeOccupancy вычисляет занятость слота на указанную дату.
// Чистая функция над переданными данными: никаких обращений к хранилищу
// и к текущему времени, дата всегда передаётся явно.
//
// Правила подсчёта:
//   - активные: подписки со статусом active, чей диапазон дат покрывает дату
//   - новые записи: подписки со статусом scheduled либо active с будущим
//     стартом; продления (у участника уже есть активная подписка на этот
//     слот) не считаются повторно - место уже занято
//   - exception-уровень: активные сортируются по createdAt (FIFO), места
//     с индексом >= regularCapacity уходят в exception-вместимость
//   - переполнение меряется только относительно регулярной вместимости;
//     exception-вместимость в этой оценке не участвует намеренно
//   - пробные занятия только отображаются и на числа не влияют
func ComputeOccupancy(
	slot *SessionSlot,
	referenceDate time.Time,
	subscriptions []*MembershipSubscription,
	trialCount int,
) (*SlotOccupancySnapshot, error) {
	refDate := NormalizeDate(referenceDate)

	// 1. Оставляем только подписки этого слота
	slotSubs := make([]*MembershipSubscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if sub.SlotID == slot.ID {
			slotSubs = append(slotSubs, sub)
		}
	}

	// 2. Активные на дату
	activeSet := make([]*MembershipSubscription, 0, len(slotSubs))
	activeMemberIDs := make(map[int64]struct{})
	for _, sub := range slotSubs {
		if sub.IsActiveOn(refDate) {
			activeSet = append(activeSet, sub)
			activeMemberIDs[sub.MemberID] = struct{}{}
		}
	}

	// 3. Новые записи: ещё не начавшиеся подписки, исключая продления
	newScheduledCount := 0
	for _, sub := range slotSubs {
		if !sub.IsUpcoming(refDate) {
			continue
		}
		if _, isRenewal := activeMemberIDs[sub.MemberID]; isRenewal {
			continue
		}
		newScheduledCount++
	}

	// 4. Всего занято мест
	totalBooked := len(activeSet) + newScheduledCount

	// 5. Распределение по exception-уровню: строгий FIFO по createdAt,
	// при равных createdAt решает меньший id
	sort.SliceStable(activeSet, func(i, j int) bool {
		if activeSet[i].CreatedAt.Equal(activeSet[j].CreatedAt) {
			return activeSet[i].ID < activeSet[j].ID
		}
		return activeSet[i].CreatedAt.Before(activeSet[j].CreatedAt)
	})

	regularSeats := slot.RegularCapacity
	if regularSeats < 0 {
		regularSeats = 0
	}
	exceptionMemberIDs := make([]int64, 0)
	seenException := make(map[int64]struct{})
	for i := regularSeats; i < len(activeSet); i++ {
		memberID := activeSet[i].MemberID
		if _, ok := seenException[memberID]; ok {
			continue
		}
		seenException[memberID] = struct{}{}
		exceptionMemberIDs = append(exceptionMemberIDs, memberID)
	}

	exceptionCount := len(exceptionMemberIDs)
	regularCount := totalBooked - exceptionCount

	// 6. Свободные регулярные места
	available := slot.RegularCapacity - totalBooked
	if available < 0 {
		available = 0
	}

	// 7. Переполнение относительно регулярной вместимости
	isOverbooked := totalBooked > slot.RegularCapacity
	overbookedBy := 0
	if isOverbooked {
		overbookedBy = totalBooked - slot.RegularCapacity
	}

	snapshot := &SlotOccupancySnapshot{
		SlotID:             slot.ID,
		ReferenceDate:      refDate,
		TotalBooked:        totalBooked,
		ActiveCount:        len(activeSet),
		NewScheduledCount:  newScheduledCount,
		RegularCount:       regularCount,
		ExceptionCount:     exceptionCount,
		TrialCount:         trialCount,
		ExceptionMemberIDs: exceptionMemberIDs,
		Available:          available,
		IsOverbooked:       isOverbooked,
		OverbookedBy:       overbookedBy,
	}

	// 9. Загрузка в процентах; при некорректной вместимости не делим на ноль
	if !slot.HasValidCapacity() {
		return snapshot, ErrInvalidCapacityConfig
	}

	utilization := int(math.Round(float64(totalBooked) / float64(slot.RegularCapacity) * 100))
	snapshot.UtilizationPercent = ptr.Ptr(utilization)

	return snapshot, nil
}
