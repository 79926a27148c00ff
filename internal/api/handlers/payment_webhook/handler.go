package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	reconcilePayment "github.com/murlyka/CatCafe-BookingService/internal/usecase/reconcile_payment"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase ReconcilePaymentUseCase
	logger  Logger
}

func NewHandler(useCase ReconcilePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET/POST /api/v1/payments/webhook
// GET - проверка доступности вебхука при его регистрации у провайдера
// POST - уведомление об изменении статуса инвойса (тело в форме InvoiceStatus)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		w.WriteHeader(http.StatusOK)
		return
	}

	var status monobank.InvoiceStatus
	if err := handlers.DecodeJSON(r, &status); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reconcilePayment.Request{
		InvoiceID: status.InvoiceID,
		Reference: status.Reference,
		Status:    status.Status,
	})
	if err != nil {
		// Неизвестное бронирование подтверждаем, чтобы провайдер
		// не ретраил вебхук бесконечно; остальное отдаём на ретрай
		if errors.Is(err, reconcilePayment.ErrBookingNotFound) ||
			errors.Is(err, reconcilePayment.ErrInvalidInput) {
			h.logger.Warn("POST /payments/webhook - No booking for invoice=%s, reference=%s",
				status.InvoiceID, status.Reference)
			w.WriteHeader(http.StatusOK)
			return
		}

		h.logger.Error("POST /payments/webhook - Failed: invoice=%s, error=%v", status.InvoiceID, err)
		handlers.RespondInternalError(w)
		return
	}

	if result.Updated {
		h.logger.Info("POST /payments/webhook - Booking %s marked paid by invoice %s",
			result.BookingID, status.InvoiceID)
	}

	w.WriteHeader(http.StatusOK)
}
