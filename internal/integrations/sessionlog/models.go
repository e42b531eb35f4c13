package sessionlog

// ExecutionStatus ответ studio-ядра о проведении занятия
type ExecutionStatus struct {
	SlotID   int64  `json:"slot_id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Executed bool   `json:"executed"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
