package create_invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	bookingRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/booking"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
)

// UseCase use case выставления инвойса существующему бронированию
// Используется админкой, когда автоматическое выставление при создании
// бронирования не удалось
type UseCase struct {
	bookingRepo   BookingRepository
	paymentClient PaymentClient
	config        Config
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentClient PaymentClient,
	config Config,
	logger Logger,
) *UseCase {
	if config.CurrencyCode <= 0 {
		config.CurrencyCode = domain.CurrencyUAH
	}

	return &UseCase{
		bookingRepo:   bookingRepo,
		paymentClient: paymentClient,
		config:        config,
		logger:        logger,
	}
}

// Execute выполняет выставление инвойса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateInvoice: booking=%s, amount=%.2f", req.BookingID, req.Amount)

	// 1. Валидация входных данных
	if req.BookingID == "" {
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	if uc.paymentClient == nil {
		return nil, ErrPaymentsDisabled
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreateInvoice: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreateInvoice: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем, что бронированию можно выставить инвойс
	if booking.HasInvoice() {
		uc.logger.Warn("CreateInvoice: booking id=%s already has invoice %s", booking.ID, *booking.PaymentID)
		return nil, ErrInvoiceAlreadyLinked
	}
	if booking.IsPaid() || !booking.IsActive() {
		uc.logger.Warn("CreateInvoice: booking id=%s is not payable (status=%s, payment=%s)",
			booking.ID, booking.Status, booking.PaymentStatus)
		return nil, ErrBookingNotPayable
	}

	// 4. Сумма по умолчанию - стоимость бронирования
	amount := req.Amount
	if amount == 0 {
		amount = booking.TotalPrice
	}

	destination := req.Description
	if destination == "" {
		destination = booking.ServiceName
	}

	// 5. Создаем инвойс у провайдера
	invoice, err := uc.paymentClient.CreateInvoice(ctx, &monobank.CreateInvoiceRequest{
		Amount: domain.PriceToMinorUnits(amount),
		Ccy:    uc.config.CurrencyCode,
		MerchantPaymInfo: monobank.MerchantPaymInfo{
			Reference:   booking.ID,
			Destination: destination,
		},
		RedirectURL: strings.ReplaceAll(uc.config.RedirectURL, "{id}", booking.ID),
		WebHookURL:  uc.config.WebhookURL,
	})
	if err != nil {
		uc.logger.Error("CreateInvoice: provider call failed for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to create invoice: %v", ErrInternal, err)
	}

	// 6. Привязываем инвойс к бронированию
	if err := uc.bookingRepo.SetInvoice(ctx, booking.ID, invoice.InvoiceID); err != nil {
		if errors.Is(err, bookingRepo.ErrInvoiceAlreadyLinked) {
			// Параллельный запрос успел привязать другой инвойс
			uc.logger.Warn("CreateInvoice: booking id=%s got another invoice concurrently", booking.ID)
			return nil, ErrInvoiceAlreadyLinked
		}
		uc.logger.Error("CreateInvoice: failed to link invoice %s to booking id=%s: %v",
			invoice.InvoiceID, booking.ID, err)
		return nil, fmt.Errorf("%w: failed to link invoice: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateInvoice: invoice %s created for booking id=%s", invoice.InvoiceID, booking.ID)

	return &Response{
		InvoiceID: invoice.InvoiceID,
		PageURL:   invoice.PageURL,
	}, nil
}
