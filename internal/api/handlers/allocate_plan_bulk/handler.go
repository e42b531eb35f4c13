package allocate_plan_bulk

import (
	"errors"
	"net/http"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/YSM-SchedulingService/internal/api/middleware"
	allocatePlanToAll "github.com/m04kA/YSM-SchedulingService/internal/usecase/allocate_plan_to_all"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPlanNotFound = "план занятия не найден"
	msgPlanArchived = "план занятия находится в архиве"
)

type Handler struct {
	useCase AllocatePlanToAllUseCase
	logger  Logger
}

func NewHandler(useCase AllocatePlanToAllUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations/bulk
// Body: {"sessionPlanId": 1, "date": "2026-02-20"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем тело запроса
	var req BulkAllocateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, &req)
	if err != nil {
		h.logger.Warn("POST /allocations/bulk - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, allocatePlanToAll.ErrPlanNotFound):
			h.logger.Warn("POST /allocations/bulk - Plan not found: plan_id=%d, user_id=%d",
				req.SessionPlanID, userID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, allocatePlanToAll.ErrPlanArchived):
			h.logger.Warn("POST /allocations/bulk - Plan archived: plan_id=%d, user_id=%d",
				req.SessionPlanID, userID)
			handlers.RespondUnprocessable(w, msgPlanArchived)

		case errors.Is(err, allocatePlanToAll.ErrInvalidInput):
			h.logger.Warn("POST /allocations/bulk - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /allocations/bulk - Failed to allocate plan: plan_id=%d, user_id=%d, error=%v",
				req.SessionPlanID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /allocations/bulk - Plan allocated to slots: plan_id=%d, date=%s, created=%d, skipped=%d, user_id=%d",
		req.SessionPlanID, req.Date, len(result.Allocations), len(result.SkippedSlotIDs), userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
