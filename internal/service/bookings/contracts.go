package bookings

import (
	"context"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID string, status domain.PaymentStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, reason string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
