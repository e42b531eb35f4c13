package cancel_allocation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/YSM-SchedulingService/internal/api/middleware"
	"github.com/m04kA/YSM-SchedulingService/internal/service/allocations"
)

const (
	msgInvalidAllocationID = "некорректный ID назначения"
	msgAllocationNotFound  = "назначение не найдено"
)

type Handler struct {
	service AllocationsService
	logger  Logger
}

func NewHandler(service AllocationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/allocations/{allocationId}/cancel
// Идемпотентна: повторная отмена уже отменённого назначения возвращает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем allocationId из URL
	allocationIDStr := vars["allocationId"]
	allocationID, err := strconv.ParseInt(allocationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /allocations/{id}/cancel - Invalid allocation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAllocationID)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	// Вызываем сервис
	if err := h.service.Cancel(r.Context(), allocationID); err != nil {
		switch {
		case errors.Is(err, allocations.ErrAllocationNotFound):
			h.logger.Warn("PATCH /allocations/{id}/cancel - Allocation not found: allocation_id=%d, user_id=%d",
				allocationID, userID)
			handlers.RespondNotFound(w, msgAllocationNotFound)

		default:
			h.logger.Error("PATCH /allocations/{id}/cancel - Failed to cancel allocation: allocation_id=%d, user_id=%d, error=%v",
				allocationID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /allocations/{id}/cancel - Allocation cancelled: allocation_id=%d, user_id=%d",
		allocationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
