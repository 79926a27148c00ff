package check_payment

import (
	"context"

	checkPayment "github.com/murlyka/CatCafe-BookingService/internal/usecase/check_payment"
)

type CheckPaymentUseCase interface {
	Execute(ctx context.Context, req *checkPayment.Request) (*checkPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
