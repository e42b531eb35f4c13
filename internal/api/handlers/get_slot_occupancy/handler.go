package get_slot_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/YSM-SchedulingService/internal/api/handlers"
	computeOccupancy "github.com/m04kA/YSM-SchedulingService/internal/usecase/compute_occupancy"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotFound  = "слот не найден"
)

type Handler struct {
	useCase ComputeOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase ComputeOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{slotId}/occupancy
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем slotId из URL
	slotIDStr := vars["slotId"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/occupancy - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots/{id}/occupancy - Missing date: slot_id=%d", slotID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(slotID, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots/{id}/occupancy - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, computeOccupancy.ErrSlotNotFound):
			h.logger.Warn("GET /slots/{id}/occupancy - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, computeOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /slots/{id}/occupancy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /slots/{id}/occupancy - Failed to compute occupancy: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots/{id}/occupancy - Occupancy computed: slot_id=%d, date=%s, total_booked=%d",
		slotID, dateStr, result.Snapshot.TotalBooked)
	handlers.RespondJSON(w, http.StatusOK, response)
}
