package reconcile_payment

import (
	"context"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPaymentID(ctx context.Context, invoiceID string) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	MarkPaid(ctx context.Context, bookingID, invoiceID string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
