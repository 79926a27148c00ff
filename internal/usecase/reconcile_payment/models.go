package reconcile_payment

// Request модель запроса на сверку платежа
// Приходит из вебхука провайдера либо из ручной проверки статуса
type Request struct {
	InvoiceID string // ID инвойса провайдера
	Reference string // Reference инвойса (равен ID бронирования)
	Status    string // Статус инвойса у провайдера
}

// Response модель результата сверки
type Response struct {
	BookingID     string // ID бронирования (пустой, если платёж не успешен)
	Status        string // Статус бронирования после сверки
	PaymentStatus string // Статус оплаты после сверки
	Updated       bool   // true, если сверка изменила состояние бронирования
}
