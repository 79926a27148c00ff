package get_available_slots

import (
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
)

// Config параметры построения сетки слотов
type Config struct {
	SlotStepMinutes  int // Шаг сетки слотов в минутах
	MinNoticeMinutes int // Минимальное время до начала визита при бронировании на сегодня
}

// Request модель запроса на получение доступных окон для визита
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения окон (без времени)
}

// Response модель ответа со списком доступных окон
type Response struct {
	Date      time.Time           // Дата, на которую запрашивались окна
	ServiceID int64               // ID услуги
	Slots     []domain.SlotWindow // Список доступных окон визита
}
