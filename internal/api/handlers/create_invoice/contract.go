package create_invoice

import (
	"context"

	createInvoice "github.com/murlyka/CatCafe-BookingService/internal/usecase/create_invoice"
)

type CreateInvoiceUseCase interface {
	Execute(ctx context.Context, req *createInvoice.Request) (*createInvoice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
