package get_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/internal/service/bookings"
	"github.com/murlyka/CatCafe-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/bookings
// Query параметры: start_date, end_date, status, payment_status, include_inactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{
		IncludeInactive: query.Get("include_inactive") == "true",
	}

	if v := query.Get("start_date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid start_date: %s", v)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
	}

	if v := query.Get("end_date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid end_date: %s", v)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &date
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("payment_status"); v != "" {
		req.PaymentStatus = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
