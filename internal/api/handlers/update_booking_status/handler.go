package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	"github.com/murlyka/CatCafe-BookingService/internal/service/bookings"
	"github.com/murlyka/CatCafe-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidStatus      = "некорректный статус"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStatus PUT /api/v1/bookings/{id}/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /bookings/{id}/status", id, err)
		return
	}

	h.logger.Info("PUT /bookings/{id}/status - Status updated: id=%s, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePaymentStatus PUT /api/v1/bookings/{id}/payment-status
func (h *Handler) HandlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdatePaymentStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/payment-status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePaymentStatus(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /bookings/{id}/payment-status", id, err)
		return
	}

	h.logger.Info("PUT /bookings/{id}/payment-status - Payment status updated: id=%s, status=%s", id, req.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route, id string, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: id=%s", route, id)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, bookings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid status: id=%s", route, id)
		handlers.RespondBadRequest(w, msgInvalidStatus)

	default:
		h.logger.Error("%s - Failed: id=%s, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
