package allocations

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда назначение не найдено
	ErrAllocationNotFound = errors.New("allocation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
