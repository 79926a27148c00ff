package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	getSlots "github.com/murlyka/CatCafe-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID = "некорректный идентификатор услуги"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired     = "параметр date обязателен"
	msgServiceNotFound  = "услуга не найдена"
	msgServiceInactive  = "услуга недоступна для бронирования"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil || serviceID <= 0 {
		h.logger.Warn("GET /services/{serviceId}/available-slots - Invalid service id: %s", vars["serviceId"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /services/%d/available-slots - Invalid date: %s", serviceID, dateParam)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrServiceNotFound):
			h.logger.Warn("GET /services/%d/available-slots - Service not found", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getSlots.ErrServiceInactive):
			h.logger.Warn("GET /services/%d/available-slots - Service inactive", serviceID)
			handlers.RespondError(w, http.StatusConflict, msgServiceInactive)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/%d/available-slots - Invalid input: %v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /services/%d/available-slots - Failed: %v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
