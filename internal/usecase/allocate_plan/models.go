package allocate_plan

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// Request модель запроса на назначение плана занятия
type Request struct {
	UserID        int64     // ID оператора (для логирования)
	SessionPlanID int64     // ID плана занятия из каталога
	SlotID        int64     // ID слота
	Date          time.Time // Дата занятия
}

// Response модель ответа с созданным назначением
type Response struct {
	ID            int64
	SessionPlanID int64
	SlotID        int64
	Date          time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// fromDomain конвертирует domain модель в response
func fromDomain(a *domain.SessionPlanAllocation) *Response {
	return &Response{
		ID:            a.ID,
		SessionPlanID: a.SessionPlanID,
		SlotID:        a.SlotID,
		Date:          a.Date,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
