package create_booking

import (
	"time"

	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

// Config параметры создания бронирования
type Config struct {
	SlotStepMinutes    int    // Шаг сетки слотов в минутах
	MinNoticeMinutes   int    // Минимальное время до начала визита при бронировании на сегодня
	DailyGuestCapacity int    // Максимум гостей одновременно (0 - проверка отключена)
	CurrencyCode       int    // Код валюты ISO 4217 для инвойсов
	RedirectURL        string // URL возврата после оплаты, {id} заменяется на ID бронирования
	WebhookURL         string // URL вебхука для уведомлений провайдера
}

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     int64            // ID услуги
	Date          time.Time        // Дата визита (без времени)
	StartTime     types.TimeString // Время начала визита (например, "10:00")
	GuestsCount   int              // Количество гостей
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	CustomerEmail string           // Email клиента
	Comment       *string          // Комментарий к бронированию (опционально)
}

// Response модель ответа с созданным бронированием
// InvoiceID и PageURL пусты, если инвойс не был создан -
// бронирование при этом сохранено и ждёт оплаты
type Response struct {
	ID              string           // ID созданного бронирования
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги
	BookingDate     time.Time        // Дата визита
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	GuestsCount     int              // Количество гостей
	TotalPrice      float64          // Итоговая стоимость
	Status          string           // Статус бронирования
	PaymentStatus   string           // Статус оплаты

	InvoiceID string // ID инвойса провайдера (если создан)
	PageURL   string // Ссылка на страницу оплаты (если инвойс создан)

	CreatedAt time.Time // Время создания
}
