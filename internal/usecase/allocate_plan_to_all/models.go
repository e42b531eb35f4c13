package allocate_plan_to_all

import (
	"time"

	"github.com/m04kA/YSM-SchedulingService/internal/domain"
)

// Request модель запроса на массовое назначение плана
type Request struct {
	UserID        int64     // ID оператора (для логирования)
	SessionPlanID int64     // ID плана занятия из каталога
	Date          time.Time // Дата, на которую назначается план
}

// Allocation созданное назначение в ответе
type Allocation struct {
	ID            int64
	SessionPlanID int64
	SlotID        int64
	Date          time.Time
	Status        string
	CreatedAt     time.Time
}

// Response модель ответа массового назначения
type Response struct {
	Allocations    []Allocation // Созданные назначения, по одному на слот
	SkippedSlotIDs []int64      // Слоты, пропущенные из-за уже проведённого занятия
}

// fromDomain конвертирует domain модель в элемент ответа
func fromDomain(a *domain.SessionPlanAllocation) Allocation {
	return Allocation{
		ID:            a.ID,
		SessionPlanID: a.SessionPlanID,
		SlotID:        a.SlotID,
		Date:          a.Date,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}
