package check_payment

// Request модель запроса на ручную проверку платежа
type Request struct {
	InvoiceID string // ID инвойса провайдера
}

// Response модель результата проверки
type Response struct {
	InvoiceID string // ID инвойса
	Status    string // Статус инвойса у провайдера
	Reference string // Reference инвойса (ID бронирования)
	BookingID string // ID бронирования (если платёж сопоставлен)
	Updated   bool   // true, если проверка изменила состояние бронирования
}
