package check_slot_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	checkCapacity "github.com/m04kA/YSM-SchedulingService/internal/usecase/check_capacity"
)

const (
	msgInvalidSlotID    = "некорректный ID слота"
	msgMissingStartDate = "дата начала обязательна"
	msgMissingEndDate   = "дата окончания обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата окончания раньше даты начала"
	msgSlotNotFound     = "слот не найден"
)

type Handler struct {
	useCase CheckCapacityUseCase
	logger  Logger
}

func NewHandler(useCase CheckCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/capacity-check
// Query params: startDate (required), endDate (required), обе YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем slotId из URL
	slotIDStr := vars["slotId"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/capacity-check - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Извлекаем даты из query параметров
	startDateStr := r.URL.Query().Get("startDate")
	if startDateStr == "" {
		h.logger.Warn("GET /slots/{id}/capacity-check - Missing start date: slot_id=%d", slotID)
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}

	endDateStr := r.URL.Query().Get("endDate")
	if endDateStr == "" {
		h.logger.Warn("GET /slots/{id}/capacity-check - Missing end date: slot_id=%d", slotID)
		handlers.RespondBadRequest(w, msgMissingEndDate)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(slotID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/capacity-check - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkCapacity.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{id}/capacity-check - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, checkCapacity.ErrInvalidDateRange):
			h.logger.Warn("GET /slots/{id}/capacity-check - Invalid date range: slot_id=%d, start=%s, end=%s",
				slotID, startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkCapacity.ErrInvalidInput):
			h.logger.Warn("GET /slots/{id}/capacity-check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /slots/{id}/capacity-check - Failed to check capacity: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(slotID, useCaseReq.StartDate, useCaseReq.EndDate, result)

	h.logger.Info("GET /slots/{id}/capacity-check - Capacity checked: slot_id=%d, available=%t, exception_only=%t",
		slotID, result.Available, result.IsExceptionOnly)
	handlers.RespondJSON(w, http.StatusOK, response)
}
