package check_capacity

import "time"

// Request модель запроса проверки вместимости для новой подписки
type Request struct {
	SlotID    int64     // ID слота
	StartDate time.Time // Предполагаемое начало подписки
	EndDate   time.Time // Предполагаемое окончание подписки (включительно)
}

// Response модель ответа проверки вместимости
type Response struct {
	Available       bool // Есть ли место (с учётом exception-вместимости)
	IsExceptionOnly bool // Новая подписка попадёт в exception-уровень
	CurrentBookings int  // Занято мест на дату начала
	NormalCapacity  int  // Регулярная вместимость
	TotalCapacity   int  // Регулярная + exception вместимость
}
