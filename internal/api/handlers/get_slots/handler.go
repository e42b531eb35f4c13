package get_slots

import (
	"net/http"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
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

// Handle GET /api/v1/slots
// Возвращает активные слоты в порядке создания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetActive(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to get active slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Active slots retrieved: count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
