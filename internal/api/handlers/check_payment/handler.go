package check_payment

import (
	"errors"
	"net/http"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	checkPayment "github.com/murlyka/CatCafe-BookingService/internal/usecase/check_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvoiceRequired    = "идентификатор инвойса обязателен"
	msgInvoiceNotFound    = "инвойс не найден у провайдера"
	msgBookingNotFound    = "бронирование для инвойса не найдено"
	msgPaymentsDisabled   = "платёжный провайдер не настроен"

	msgPaymentConfirmed  = "оплата подтверждена"
	msgAlreadyReconciled = "оплата уже была учтена"
	msgPaymentNotFinal   = "оплата ещё не завершена"
)

type Handler struct {
	useCase CheckPaymentUseCase
	logger  Logger
}

func NewHandler(useCase CheckPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.InvoiceID == "" {
		handlers.RespondBadRequest(w, msgInvoiceRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkPayment.Request{InvoiceID: req.InvoiceID})
	if err != nil {
		switch {
		case errors.Is(err, checkPayment.ErrInvoiceNotFound):
			h.logger.Warn("POST /payments/check - Invoice not found: %s", req.InvoiceID)
			handlers.RespondNotFound(w, msgInvoiceNotFound)

		case errors.Is(err, checkPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/check - Booking not found for invoice: %s", req.InvoiceID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkPayment.ErrPaymentsDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentsDisabled)

		case errors.Is(err, checkPayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvoiceRequired)

		default:
			h.logger.Error("POST /payments/check - Failed: invoice=%s, error=%v", req.InvoiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgPaymentNotFinal
	if result.Status == monobank.InvoiceStatusSuccess {
		message = msgAlreadyReconciled
		if result.Updated {
			message = msgPaymentConfirmed
		}
	}

	handlers.RespondJSON(w, http.StatusOK, &CheckPaymentResponse{
		InvoiceID: result.InvoiceID,
		Status:    result.Status,
		BookingID: result.BookingID,
		Updated:   result.Updated,
		Message:   message,
	})
}
