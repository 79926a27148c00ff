package create_invoice

// Config параметры выставления инвойса
type Config struct {
	CurrencyCode int    // Код валюты ISO 4217
	RedirectURL  string // URL возврата после оплаты, {id} заменяется на ID бронирования
	WebhookURL   string // URL вебхука для уведомлений провайдера
}

// Request модель запроса на выставление инвойса
type Request struct {
	BookingID   string  // ID бронирования
	Amount      float64 // Сумма в основных единицах валюты (0 - взять стоимость бронирования)
	Description string  // Назначение платежа (опционально)
}

// Response модель ответа с созданным инвойсом
type Response struct {
	InvoiceID string // ID инвойса провайдера
	PageURL   string // Ссылка на страницу оплаты
}
