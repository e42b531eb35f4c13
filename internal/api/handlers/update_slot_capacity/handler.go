package update_slot_capacity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/YSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/YSM-SchedulingService/internal/service/slots"
	"github.com/m04kA/YSM-SchedulingService/internal/service/slots/models"
)

const (
	msgInvalidSlotID   = "некорректный ID слота"
	msgInvalidBody     = "некорректное тело запроса"
	msgSlotNotFound    = "слот не найден"
	msgInvalidCapacity = "недопустимые значения вместимости"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/slots/{slotId}/capacity
// Body: {"regularCapacity": 8, "exceptionCapacity": 2}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем slotId из URL
	slotIDStr := vars["slotId"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /slots/{id}/capacity - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Декодируем тело запроса
	var req models.UpdateCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{id}/capacity - Invalid request body: slot_id=%d, error=%v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	// Вызываем сервис
	result, err := h.service.UpdateCapacity(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/{id}/capacity - Slot not found: slot_id=%d, user_id=%d", slotID, userID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrInvalidCapacity):
			h.logger.Warn("PUT /slots/{id}/capacity - Invalid capacity: slot_id=%d, user_id=%d, error=%v",
				slotID, userID, err)
			handlers.RespondUnprocessable(w, msgInvalidCapacity)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PUT /slots/{id}/capacity - Invalid input: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /slots/{id}/capacity - Failed to update capacity: slot_id=%d, user_id=%d, error=%v",
				slotID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/{id}/capacity - Capacity updated: slot_id=%d, user_id=%d, regular=%d, exception=%d",
		slotID, userID, result.RegularCapacity, result.ExceptionCapacity)
	handlers.RespondJSON(w, http.StatusOK, result)
}
