package allocate_plan_to_all

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
	planClient "github.com/m04kA/YSM-SchedulingService/internal/integrations/plancatalog"
)

// UseCase use case массового назначения плана на все активные слоты даты.
// Слоты, по которым занятие на эту дату уже проведено, пропускаются:
// переназначать план задним числом нельзя. Каждый слот обрабатывается
// своей транзакцией - частичный успех допустим и отражается в ответе
type UseCase struct {
	allocationRepo AllocationRepository
	slotRepo       SlotRepository
	planClient     PlanCatalogClient
	sessionLog     SessionLogClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	allocationRepo AllocationRepository,
	slotRepo SlotRepository,
	planClient PlanCatalogClient,
	sessionLog SessionLogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		allocationRepo: allocationRepo,
		slotRepo:       slotRepo,
		planClient:     planClient,
		sessionLog:     sessionLog,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case массового назначения плана
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocatePlanToAll: user=%d, plan=%d, date=%s",
		req.UserID, req.SessionPlanID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocatePlanToAll: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование плана в каталоге
	plan, err := uc.planClient.GetPlan(ctx, req.SessionPlanID)
	if err != nil {
		if errors.Is(err, planClient.ErrPlanNotFound) {
			uc.logger.Warn("AllocatePlanToAll: plan id=%d not found", req.SessionPlanID)
			return nil, ErrPlanNotFound
		}
		uc.logger.Error("AllocatePlanToAll: failed to get plan id=%d: %v", req.SessionPlanID, err)
		return nil, fmt.Errorf("%w: failed to get plan: %v", ErrInternal, err)
	}
	if plan.IsArchived {
		uc.logger.Warn("AllocatePlanToAll: plan id=%d is archived", req.SessionPlanID)
		return nil, ErrPlanArchived
	}

	// 3. Получаем активные слоты
	slots, err := uc.slotRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("AllocatePlanToAll: failed to get active slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get active slots: %v", ErrInternal, err)
	}

	date := domain.NormalizeDate(req.Date)
	resp := &Response{
		Allocations:    make([]Allocation, 0, len(slots)),
		SkippedSlotIDs: make([]int64, 0),
	}

	// 4. По каждому слоту: пропускаем проведённые, остальным назначаем план
	for _, slot := range slots {
		executed, err := uc.sessionLog.HasExecution(ctx, slot.ID, date)
		if err != nil {
			uc.logger.Error("AllocatePlanToAll: failed to check execution for slot=%d: %v", slot.ID, err)
			return nil, fmt.Errorf("%w: failed to check session execution: %v", ErrInternal, err)
		}
		if executed {
			uc.logger.Info("AllocatePlanToAll: slot=%d already executed on %s, skipping",
				slot.ID, date.Format(domain.DateFormat))
			resp.SkippedSlotIDs = append(resp.SkippedSlotIDs, slot.ID)
			continue
		}

		var created *domain.SessionPlanAllocation

		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if err := uc.allocationRepo.CancelScheduledBySlotAndDate(txCtx, slot.ID, date); err != nil {
				return fmt.Errorf("%w: failed to cancel existing allocation: %v", ErrInternal, err)
			}

			alloc, err := uc.allocationRepo.Create(txCtx, &domain.SessionPlanAllocation{
				SessionPlanID: req.SessionPlanID,
				SlotID:        slot.ID,
				Date:          date,
				Status:        domain.AllocationStatusScheduled,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to create allocation: %v", ErrInternal, err)
			}

			created = alloc
			return nil
		})

		if err != nil {
			uc.logger.Error("AllocatePlanToAll: failed for slot=%d: %v", slot.ID, err)
			return nil, err
		}

		resp.Allocations = append(resp.Allocations, fromDomain(created))
	}

	uc.logger.Info("AllocatePlanToAll: allocated plan=%d to %d slots on %s (%d skipped)",
		req.SessionPlanID, len(resp.Allocations), date.Format(domain.DateFormat), len(resp.SkippedSlotIDs))

	return resp, nil
}
