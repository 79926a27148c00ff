package create_invoice

import (
	"errors"
	"net/http"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	createInvoice "github.com/murlyka/CatCafe-BookingService/internal/usecase/create_invoice"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvoiceLinked      = "у бронирования уже есть инвойс"
	msgNotPayable         = "бронированию нельзя выставить инвойс"
	msgPaymentsDisabled   = "платёжный провайдер не настроен"
	msgInvalidInput       = "некорректные данные инвойса"
)

type Handler struct {
	useCase CreateInvoiceUseCase
	logger  Logger
}

func NewHandler(useCase CreateInvoiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/invoice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createInvoice.Request{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, createInvoice.ErrBookingNotFound):
			h.logger.Warn("POST /payments/invoice - Booking not found: id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createInvoice.ErrInvoiceAlreadyLinked):
			h.logger.Warn("POST /payments/invoice - Invoice already linked: booking=%s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvoiceLinked)

		case errors.Is(err, createInvoice.ErrBookingNotPayable):
			h.logger.Warn("POST /payments/invoice - Booking not payable: id=%s", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPayable)

		case errors.Is(err, createInvoice.ErrPaymentsDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentsDisabled)

		case errors.Is(err, createInvoice.ErrInvalidInput):
			h.logger.Warn("POST /payments/invoice - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /payments/invoice - Failed: booking=%s, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/invoice - Invoice %s created for booking=%s", result.InvoiceID, req.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, &CreateInvoiceResponse{
		InvoiceID: result.InvoiceID,
		PageURL:   result.PageURL,
	})
}
