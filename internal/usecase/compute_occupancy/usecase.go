package compute_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	slotRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/slot"
)

// UseCase use case расчёта занятости слота на дату.
// Снапшот считается заново на каждый запрос и нигде не кешируется:
// это чистая функция от реестра слотов и журналов подписок/пробных занятий
type UseCase struct {
	slotRepo  SlotRepository
	subsRepo  SubscriptionRepository
	trialRepo TrialRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	subsRepo SubscriptionRepository,
	trialRepo TrialRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		subsRepo:  subsRepo,
		trialRepo: trialRepo,
		logger:    logger,
	}
}

// Execute выполняет use case расчёта занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeOccupancy: slot=%d, date=%s", req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ComputeOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слот
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("ComputeOccupancy: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ComputeOccupancy: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Загружаем подписки слота
	subs, err := uc.subsRepo.GetBySlotID(ctx, req.SlotID)
	if err != nil {
		uc.logger.Error("ComputeOccupancy: failed to get subscriptions for slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get subscriptions: %v", ErrInternal, err)
	}

	// 4. Загружаем пробные занятия на дату (отображаются рядом со снапшотом)
	trials, err := uc.trialRepo.GetBySlotAndDate(ctx, req.SlotID, req.Date)
	if err != nil {
		uc.logger.Error("ComputeOccupancy: failed to get trials for slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get trials: %v", ErrInternal, err)
	}

	// 5. Считаем снапшот
	snapshot, err := domain.ComputeOccupancy(slot, req.Date, subs, len(trials))
	if err != nil {
		// Некорректная вместимость в реестре: снапшот рассчитан,
		// но utilization не заполнен. Отдаём результат, проблему логируем
		if errors.Is(err, domain.ErrInvalidCapacityConfig) {
			uc.logger.Error("ComputeOccupancy: slot id=%d has invalid regular capacity %d",
				slot.ID, slot.RegularCapacity)
			return &Response{Slot: slot, Snapshot: snapshot, Trials: trials}, nil
		}
		uc.logger.Error("ComputeOccupancy: computation failed for slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: computation failed: %v", ErrInternal, err)
	}

	if snapshot.IsOverbooked {
		uc.logger.Warn("ComputeOccupancy: slot id=%d overbooked by %d on %s",
			slot.ID, snapshot.OverbookedBy, req.Date.Format(domain.DateFormat))
	}

	return &Response{Slot: slot, Snapshot: snapshot, Trials: trials}, nil
}
