package get_slot_allocation

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/slots/{slotId}/allocation
// Query params: date (required, YYYY-MM-DD).
// Если план на дату не назначен, отдаём {"allocation": null}, а не 404:
// отсутствие назначения - нормальное состояние слота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем slotId из URL
	slotIDStr := vars["slotId"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/allocation - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots/{id}/allocation - Missing date: slot_id=%d", slotID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/allocation - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем сервис
	result, err := h.service.GetForSlotAndDate(r.Context(), slotID, date)
	if err != nil {
		h.logger.Error("GET /slots/{id}/allocation - Failed to get allocation: slot_id=%d, date=%s, error=%v",
			slotID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots/{id}/allocation - Allocation retrieved: slot_id=%d, date=%s, found=%t",
		slotID, dateStr, result != nil)
	handlers.RespondJSON(w, http.StatusOK, AllocationLookupResponse{Allocation: result})
}
