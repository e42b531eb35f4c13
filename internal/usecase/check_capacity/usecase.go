package check_capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/slot"
)

// UseCase use case проверки "влезет ли новая подписка в слот".
// Занятость считается на дату начала предлагаемого диапазона: подписки
// длинные, состав слота меняется медленно, и дата старта - консервативная
// оценка всего диапазона. Ответ advisory: при isExceptionOnly оператор
// подтверждает запись в exception-уровень, жёсткой блокировки нет
type UseCase struct {
	slotRepo SlotRepository
	subsRepo SubscriptionRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	subsRepo SubscriptionRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		subsRepo: subsRepo,
		logger:   logger,
	}
}

// Execute выполняет use case проверки вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckCapacity: slot=%d, start=%s, end=%s",
		req.SlotID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckCapacity: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слот
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CheckCapacity: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CheckCapacity: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Загружаем подписки слота
	subs, err := uc.subsRepo.GetBySlotID(ctx, req.SlotID)
	if err != nil {
		uc.logger.Error("CheckCapacity: failed to get subscriptions for slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get subscriptions: %v", ErrInternal, err)
	}

	// 4. Считаем занятость на дату начала диапазона
	// Пробные занятия на вместимость не влияют, передаём 0
	snapshot, err := domain.ComputeOccupancy(slot, req.StartDate, subs, 0)
	if err != nil && !errors.Is(err, domain.ErrInvalidCapacityConfig) {
		uc.logger.Error("CheckCapacity: computation failed for slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: computation failed: %v", ErrInternal, err)
	}

	currentBookings := snapshot.TotalBooked

	resp := &Response{
		Available:       currentBookings < slot.TotalCapacity(),
		IsExceptionOnly: currentBookings >= slot.RegularCapacity,
		CurrentBookings: currentBookings,
		NormalCapacity:  slot.RegularCapacity,
		TotalCapacity:   slot.TotalCapacity(),
	}

	if resp.IsExceptionOnly && resp.Available {
		uc.logger.Warn("CheckCapacity: slot id=%d is at regular capacity (%d/%d), new booking would use exception tier",
			slot.ID, currentBookings, slot.RegularCapacity)
	}

	return resp, nil
}
