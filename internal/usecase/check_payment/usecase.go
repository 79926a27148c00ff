package check_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	"github.com/murlyka/CatCafe-BookingService/internal/usecase/reconcile_payment"
)

// UseCase use case ручной проверки платежа
// Резервный канал на случай потерянного вебхука: опрашивает провайдера
// и прогоняет результат через ту же сверку, что и вебхук
type UseCase struct {
	paymentClient PaymentClient
	reconciler    Reconciler
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// paymentClient может быть nil, если провайдер не сконфигурирован
func NewUseCase(paymentClient PaymentClient, reconciler Reconciler, logger Logger) *UseCase {
	return &UseCase{
		paymentClient: paymentClient,
		reconciler:    reconciler,
		logger:        logger,
	}
}

// Execute выполняет проверку платежа по инвойсу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckPayment: invoice=%s", req.InvoiceID)

	// 1. Валидация входных данных
	if req.InvoiceID == "" {
		return nil, fmt.Errorf("%w: invoiceId is required", ErrInvalidInput)
	}

	if uc.paymentClient == nil {
		return nil, ErrPaymentsDisabled
	}

	// 2. Запрашиваем статус инвойса у провайдера
	status, err := uc.paymentClient.GetInvoiceStatus(ctx, req.InvoiceID)
	if err != nil {
		if errors.Is(err, monobank.ErrInvoiceNotFound) {
			uc.logger.Warn("CheckPayment: invoice %s not found at provider", req.InvoiceID)
			return nil, ErrInvoiceNotFound
		}
		uc.logger.Error("CheckPayment: failed to get invoice %s status: %v", req.InvoiceID, err)
		return nil, fmt.Errorf("%w: failed to get invoice status: %v", ErrInternal, err)
	}

	// 3. Прогоняем статус через сверку (неуспешные статусы - no-op)
	result, err := uc.reconciler.Execute(ctx, &reconcile_payment.Request{
		InvoiceID: status.InvoiceID,
		Reference: status.Reference,
		Status:    status.Status,
	})
	if err != nil {
		if errors.Is(err, reconcile_payment.ErrBookingNotFound) {
			uc.logger.Warn("CheckPayment: no booking matches invoice %s", req.InvoiceID)
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	uc.logger.Info("CheckPayment: invoice=%s, status=%s, updated=%v",
		status.InvoiceID, status.Status, result.Updated)

	return &Response{
		InvoiceID: status.InvoiceID,
		Status:    status.Status,
		Reference: status.Reference,
		BookingID: result.BookingID,
		Updated:   result.Updated,
	}, nil
}
