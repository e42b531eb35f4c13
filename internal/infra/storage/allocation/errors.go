package allocation

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда назначение плана не найдено
	ErrAllocationNotFound = errors.New("allocation.repository: allocation not found")

	// ErrDuplicateAllocation возвращается при нарушении уникальности
	// "не более одного scheduled-назначения на (слот, дату)"
	ErrDuplicateAllocation = errors.New("allocation.repository: scheduled allocation already exists for slot and date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("allocation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("allocation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("allocation.repository: failed to scan row")
)
