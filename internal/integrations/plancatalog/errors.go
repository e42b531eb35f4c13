package plancatalog

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план занятия не найден в каталоге
	ErrPlanNotFound = errors.New("session plan not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("plancatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("plancatalog client: invalid response")
)
