package create_invoice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_invoice: booking not found")

	// ErrInvoiceAlreadyLinked возвращается, когда у бронирования уже есть инвойс
	ErrInvoiceAlreadyLinked = errors.New("create_invoice: booking already has an invoice")

	// ErrBookingNotPayable возвращается при попытке выставить инвойс
	// оплаченному или отменённому бронированию
	ErrBookingNotPayable = errors.New("create_invoice: booking is not payable")

	// ErrPaymentsDisabled возвращается, когда платёжный провайдер не сконфигурирован
	ErrPaymentsDisabled = errors.New("create_invoice: payments are not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_invoice: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_invoice: internal error")
)
