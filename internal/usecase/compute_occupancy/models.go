package compute_occupancy

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// Request модель запроса на расчёт занятости слота
type Request struct {
	SlotID int64     // ID слота
	Date   time.Time // Дата, на которую считается занятость
}

// Response модель ответа с рассчитанной занятостью
type Response struct {
	Slot     *domain.SessionSlot           // Слот, по которому считали
	Snapshot *domain.SlotOccupancySnapshot // Рассчитанный снапшот
	Trials   []*domain.TrialBooking        // Пробные занятия на дату (для отображения)
}
