package get_services

import (
	"net/http"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
)

type Handler struct {
	serviceRepo ServiceRepository
	logger      Logger
}

func NewHandler(serviceRepo ServiceRepository, logger Logger) *Handler {
	return &Handler{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceRepo.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
