package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/YSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/YSM-SchedulingService/internal/service/slots"
	"github.com/m04kA/YSM-SchedulingService/internal/service/slots/models"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
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

// Handle POST /api/v1/slots
// Body: {"displayName": "...", "startTime": "07:00", "endTime": "08:00",
//        "regularCapacity": 8, "exceptionCapacity": 2}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем тело запроса
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	// Вызываем сервис
	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidCapacity):
			h.logger.Warn("POST /slots - Invalid capacity: user_id=%d, error=%v", userID, err)
			handlers.RespondUnprocessable(w, msgInvalidCapacity)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /slots - Failed to create slot: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created: slot_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
