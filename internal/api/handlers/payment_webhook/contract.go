package payment_webhook

import (
	"context"

	reconcilePayment "github.com/murlyka/CatCafe-BookingService/internal/usecase/reconcile_payment"
)

type ReconcilePaymentUseCase interface {
	Execute(ctx context.Context, req *reconcilePayment.Request) (*reconcilePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
