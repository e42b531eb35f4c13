package allocate_plan_to_all

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план занятия не найден в каталоге
	ErrPlanNotFound = errors.New("session plan not found")

	// ErrPlanArchived возвращается при попытке назначить архивный план
	ErrPlanArchived = errors.New("session plan is archived")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
