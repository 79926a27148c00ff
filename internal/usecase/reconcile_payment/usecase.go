package reconcile_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	bookingRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/booking"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
)

// UseCase use case сверки платежа
// Единая точка схождения для вебхука и ручной проверки статуса:
// обе дороги приводят к одному и тому же идемпотентному MarkPaid
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет сверку платежа
// Неуспешные статусы провайдера состояние бронирования не меняют:
// инвойс может ещё перейти в success, поэтому фиксируем только оплату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReconcilePayment: invoice=%s, reference=%s, status=%s",
		req.InvoiceID, req.Reference, req.Status)

	// 1. Валидация входных данных
	if req.InvoiceID == "" && req.Reference == "" {
		return nil, fmt.Errorf("%w: invoiceId or reference is required", ErrInvalidInput)
	}

	// 2. Фиксируем только успешную оплату, остальные статусы - no-op
	if req.Status != monobank.InvoiceStatusSuccess {
		uc.logger.Info("ReconcilePayment: status %q is not final success, nothing to update", req.Status)
		return &Response{Updated: false}, nil
	}

	// 3. Ищем бронирование по инвойсу, затем по reference
	// Fallback покрывает случай, когда инвойс создан, но не был привязан
	booking, err := uc.findBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Уже оплачено - повторная доставка вебхука или параллельная проверка
	if booking.IsPaid() {
		uc.logger.Info("ReconcilePayment: booking id=%s is already paid", booking.ID)
		return &Response{
			BookingID:     booking.ID,
			Status:        string(booking.Status),
			PaymentStatus: string(booking.PaymentStatus),
			Updated:       false,
		}, nil
	}

	// 5. Отмечаем бронирование оплаченным и подтверждённым
	invoiceID := req.InvoiceID
	if invoiceID == "" && booking.PaymentID != nil {
		invoiceID = *booking.PaymentID
	}

	updated, err := uc.bookingRepo.MarkPaid(ctx, booking.ID, invoiceID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ReconcilePayment: failed to mark booking id=%s paid: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to mark booking paid: %v", ErrInternal, err)
	}

	uc.logger.Info("ReconcilePayment: booking id=%s marked paid by invoice %s", updated.ID, invoiceID)

	return &Response{
		BookingID:     updated.ID,
		Status:        string(updated.Status),
		PaymentStatus: string(updated.PaymentStatus),
		Updated:       true,
	}, nil
}

// findBooking ищет бронирование по ID инвойса, затем по reference
func (uc *UseCase) findBooking(ctx context.Context, req *Request) (*domain.Booking, error) {
	if req.InvoiceID != "" {
		booking, err := uc.bookingRepo.GetByPaymentID(ctx, req.InvoiceID)
		if err == nil {
			return booking, nil
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("ReconcilePayment: failed to get booking by invoice %s: %v", req.InvoiceID, err)
			return nil, fmt.Errorf("%w: failed to get booking by invoice: %v", ErrInternal, err)
		}
	}

	if req.Reference != "" {
		booking, err := uc.bookingRepo.GetByID(ctx, req.Reference)
		if err == nil {
			return booking, nil
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("ReconcilePayment: failed to get booking by reference %s: %v", req.Reference, err)
			return nil, fmt.Errorf("%w: failed to get booking by reference: %v", ErrInternal, err)
		}
	}

	uc.logger.Warn("ReconcilePayment: booking not found for invoice=%s, reference=%s",
		req.InvoiceID, req.Reference)
	return nil, ErrBookingNotFound
}
