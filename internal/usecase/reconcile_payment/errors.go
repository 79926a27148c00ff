package reconcile_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// ни по инвойсу, ни по reference
	ErrBookingNotFound = errors.New("reconcile_payment: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reconcile_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reconcile_payment: internal error")
)
