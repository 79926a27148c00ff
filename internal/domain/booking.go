package domain

import (
	"time"

	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Booking represents one attempted reservation of a café visit
type Booking struct {
	ID              string // UUID, генерируется при создании; используется как merchant reference в платёжном провайдере
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	GuestsCount     int
	TotalPrice      float64
	Status          BookingStatus
	PaymentStatus   PaymentStatus
	PaymentID       *string // ID инвойса платёжного провайдера; после установки не меняется

	// Контактные данные клиента
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Comment       *string

	// Denormalized data for history
	ServiceName string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is not cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsPaid returns true if the booking has been paid
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentPaid
}

// HasInvoice returns true if a provider invoice is linked to the booking
func (b *Booking) HasInvoice() bool {
	return b.PaymentID != nil && *b.PaymentID != ""
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	PaymentStatus   *PaymentStatus // Фильтр по статусу оплаты (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
