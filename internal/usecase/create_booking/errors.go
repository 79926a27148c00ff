package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается, когда услуга отключена и недоступна для бронирования
	ErrServiceInactive = errors.New("create_booking: service is not available for booking")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrCafeClosed возвращается, когда кафе закрыто в указанную дату
	ErrCafeClosed = errors.New("create_booking: cafe is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда окно визита не умещается в рабочие часы
	// или пересекается с перерывом
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда на выбранную дату не осталось свободных мест
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTooLateToBook возвращается, когда бронирование на сегодня нарушает минимальное время до визита
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
