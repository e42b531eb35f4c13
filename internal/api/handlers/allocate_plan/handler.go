package allocate_plan

import (
	"errors"
	"net/http"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/YSM-SchedulingService/internal/api/middleware"
	allocatePlan "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPlanNotFound       = "план занятия не найден"
	msgPlanArchived       = "план занятия находится в архиве"
	msgSlotNotFound       = "слот не найден"
	msgSlotInactive       = "слот неактивен"
	msgAllocationConflict = "план на эту дату уже назначен конкурентным запросом"
)

type Handler struct {
	useCase AllocatePlanUseCase
	logger  Logger
}

func NewHandler(useCase AllocatePlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations
// Body: {"sessionPlanId": 1, "slotId": 2, "date": "2026-02-20"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем тело запроса
	var req AllocatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, &req)
	if err != nil {
		h.logger.Warn("POST /allocations - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, allocatePlan.ErrPlanNotFound):
			h.logger.Warn("POST /allocations - Plan not found: plan_id=%d, user_id=%d",
				req.SessionPlanID, userID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, allocatePlan.ErrPlanArchived):
			h.logger.Warn("POST /allocations - Plan archived: plan_id=%d, user_id=%d",
				req.SessionPlanID, userID)
			handlers.RespondUnprocessable(w, msgPlanArchived)

		case errors.Is(err, allocatePlan.ErrSlotNotFound):
			h.logger.Warn("POST /allocations - Slot not found: slot_id=%d, user_id=%d",
				req.SlotID, userID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, allocatePlan.ErrSlotInactive):
			h.logger.Warn("POST /allocations - Slot inactive: slot_id=%d, user_id=%d",
				req.SlotID, userID)
			handlers.RespondUnprocessable(w, msgSlotInactive)

		case errors.Is(err, allocatePlan.ErrAllocationConflict):
			h.logger.Warn("POST /allocations - Allocation conflict: slot_id=%d, date=%s, user_id=%d",
				req.SlotID, req.Date, userID)
			handlers.RespondConflict(w, msgAllocationConflict)

		case errors.Is(err, allocatePlan.ErrInvalidInput):
			h.logger.Warn("POST /allocations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /allocations - Failed to allocate plan: plan_id=%d, slot_id=%d, user_id=%d, error=%v",
				req.SessionPlanID, req.SlotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /allocations - Plan allocated: allocation_id=%d, plan_id=%d, slot_id=%d, date=%s, user_id=%d",
		result.ID, req.SessionPlanID, req.SlotID, req.Date, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
