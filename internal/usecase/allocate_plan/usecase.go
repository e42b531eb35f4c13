package allocate_plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	allocationRepo "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/allocation"
	slotStorage "github.com/m04kA/YSM-SchedulingService/internal/infra/storage/slot"
	planClient "github.com/m04kA/YSM-SchedulingService/internal/integrations/plancatalog"
)

// UseCase use case назначения плана занятия на (слот, дату).
// Замена существующего назначения - cancel-then-allocate одной
// сериализуемой транзакцией: инвариант "не более одного scheduled на ключ"
// держится на уровне хранилища (уникальный частичный индекс), а не на
// дисциплине вызывающих
type UseCase struct {
	allocationRepo AllocationRepository
	slotRepo       SlotRepository
	planClient     PlanCatalogClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocationRepo AllocationRepository,
	slotRepo SlotRepository,
	planClient PlanCatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		slotRepo:       slotRepo,
		planClient:     planClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case назначения плана
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocatePlan: user=%d, plan=%d, slot=%d, date=%s",
		req.UserID, req.SessionPlanID, req.SlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocatePlan: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование плана в каталоге
	plan, err := uc.planClient.GetPlan(ctx, req.SessionPlanID)
	if err != nil {
		if errors.Is(err, planClient.ErrPlanNotFound) {
			uc.logger.Warn("AllocatePlan: plan id=%d not found", req.SessionPlanID)
			return nil, ErrPlanNotFound
		}
		uc.logger.Error("AllocatePlan: failed to get plan id=%d: %v", req.SessionPlanID, err)
		return nil, fmt.Errorf("%w: failed to get plan: %v", ErrInternal, err)
	}
	if plan.IsArchived {
		uc.logger.Warn("AllocatePlan: plan id=%d is archived", req.SessionPlanID)
		return nil, ErrPlanArchived
	}

	// 3. Проверяем слот
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slotStorage.ErrSlotNotFound) {
			uc.logger.Warn("AllocatePlan: slot id=%d not found", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("AllocatePlan: failed to get slot id=%d: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}
	if !slot.IsActive {
		uc.logger.Warn("AllocatePlan: slot id=%d is inactive", req.SlotID)
		return nil, ErrSlotInactive
	}

	// 4. Замена назначения в сериализуемой транзакции:
	// снимаем текущее scheduled-назначение (если есть) и создаём новое
	var result *domain.SessionPlanAllocation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.allocationRepo.CancelScheduledBySlotAndDate(txCtx, req.SlotID, req.Date); err != nil {
			uc.logger.Error("AllocatePlan: failed to cancel existing allocation: %v", err)
			return fmt.Errorf("%w: failed to cancel existing allocation: %v", ErrInternal, err)
		}

		created, err := uc.allocationRepo.Create(txCtx, &domain.SessionPlanAllocation{
			SessionPlanID: req.SessionPlanID,
			SlotID:        req.SlotID,
			Date:          domain.NormalizeDate(req.Date),
			Status:        domain.AllocationStatusScheduled,
		})
		if err != nil {
			if errors.Is(err, allocationRepo.ErrDuplicateAllocation) {
				uc.logger.Warn("AllocatePlan: concurrent allocation won for slot=%d date=%s",
					req.SlotID, req.Date.Format(domain.DateFormat))
				return ErrAllocationConflict
			}
			uc.logger.Error("AllocatePlan: failed to create allocation: %v", err)
			return fmt.Errorf("%w: failed to create allocation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AllocatePlan: successfully allocated plan=%d to slot=%d date=%s (allocation id=%d)",
		req.SessionPlanID, req.SlotID, req.Date.Format(domain.DateFormat), result.ID)

	return fromDomain(result), nil
}
