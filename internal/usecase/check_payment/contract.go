package check_payment

import (
	"context"

	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	"github.com/murlyka/CatCafe-BookingService/internal/usecase/reconcile_payment"
)

// PaymentClient интерфейс клиента платёжного провайдера
type PaymentClient interface {
	GetInvoiceStatus(ctx context.Context, invoiceID string) (*monobank.InvoiceStatus, error)
}

// Reconciler интерфейс сверки платежа
type Reconciler interface {
	Execute(ctx context.Context, req *reconcile_payment.Request) (*reconcile_payment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
