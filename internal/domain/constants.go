package domain

import "math"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default booking configuration values
const (
	DefaultSlotStepMinutes    = 60 // Шаг сетки слотов: окна начинаются каждый час
	DefaultMinNoticeMinutes   = 0  // 0 = слоты текущего дня доступны до самого начала
	DefaultDailyGuestCapacity = 20 // 0 = проверка вместимости отключена
)

// Business validation constants
const (
	MinGuestsPerBooking = 1
	MaxGuestsPerBooking = 20
	MaxCommentLength    = 500
	MaxCustomerNameLen  = 200
)

// Currency constants
const (
	// CurrencyUAH код гривны по ISO 4217, валюта платёжного провайдера
	CurrencyUAH = 980

	// MinorUnitFactor количество минимальных единиц (копеек) в единице валюты
	MinorUnitFactor = 100
)

// PriceToMinorUnits converts a price in major units to the provider's minor units
func PriceToMinorUnits(price float64) int64 {
	return int64(math.Round(price * MinorUnitFactor))
}

// MinorUnitsToAmount converts provider minor units to whole major units (floor)
func MinorUnitsToAmount(minor int64) float64 {
	return float64(minor / MinorUnitFactor)
}

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятости слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ValidBookingStatuses допустимые статусы бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ValidPaymentStatuses допустимые статусы оплаты
var ValidPaymentStatuses = []PaymentStatus{
	PaymentUnpaid,
	PaymentPaid,
	PaymentRefunded,
	PaymentFailed,
}
