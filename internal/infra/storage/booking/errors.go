package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrInvoiceAlreadyLinked возвращается при попытке привязать инвойс
	// к бронированию, у которого уже есть payment_id
	ErrInvoiceAlreadyLinked = errors.New("booking.repository: invoice already linked")

	// ErrDuplicateInvoice возвращается, когда payment_id уже привязан к другому бронированию
	ErrDuplicateInvoice = errors.New("booking.repository: payment id already used by another booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking.repository: booking cannot be cancelled")
)
