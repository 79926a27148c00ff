package create_invoice

import (
	"context"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	SetInvoice(ctx context.Context, bookingID, invoiceID string) error
}

// PaymentClient интерфейс клиента платёжного провайдера
type PaymentClient interface {
	CreateInvoice(ctx context.Context, req *monobank.CreateInvoiceRequest) (*monobank.Invoice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
