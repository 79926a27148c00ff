package check_payment

import "errors"

var (
	// ErrInvoiceNotFound возвращается, когда инвойс не найден у провайдера
	ErrInvoiceNotFound = errors.New("check_payment: invoice not found")

	// ErrBookingNotFound возвращается, когда оплаченный инвойс не удалось
	// сопоставить ни с одним бронированием
	ErrBookingNotFound = errors.New("check_payment: booking not found")

	// ErrPaymentsDisabled возвращается, когда платёжный провайдер не сконфигурирован
	ErrPaymentsDisabled = errors.New("check_payment: payments are not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_payment: internal error")
)
