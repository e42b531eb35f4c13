package allocate_plan

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план занятия не найден в каталоге
	ErrPlanNotFound = errors.New("session plan not found")

	// ErrPlanArchived возвращается при попытке назначить архивный план
	ErrPlanArchived = errors.New("session plan is archived")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotInactive возвращается при попытке назначить план на неактивный слот
	ErrSlotInactive = errors.New("slot is inactive")

	// ErrAllocationConflict возвращается, когда конкурентное назначение
	// успело занять (слот, дату) первым
	ErrAllocationConflict = errors.New("scheduled allocation already exists for slot and date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
