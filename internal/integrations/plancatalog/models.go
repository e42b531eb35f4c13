package plancatalog

// SessionPlan модель плана занятия из каталога studio-ядра
type SessionPlan struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Level           string `json:"level"` // beginner / intermediate / advanced / mixed
	DurationMinutes int    `json:"duration_minutes"`
	IsArchived      bool   `json:"is_archived"`
}

// ErrorResponse модель ошибки от studio-ядра
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
