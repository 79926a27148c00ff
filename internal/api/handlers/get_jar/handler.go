package get_jar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	"github.com/murlyka/CatCafe-BookingService/internal/service/jars"
)

const (
	msgJarNotFound      = "банка не найдена"
	msgProviderDisabled = "платёжный провайдер не настроен"
	msgInvalidJarID     = "некорректный идентификатор банки"

	// Состояние банки меняется нечасто, закрываем провайдера кэшем
	cacheControlValue = "public, max-age=300"
)

type Handler struct {
	service JarService
	logger  Logger
}

func NewHandler(service JarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/jar
// Проксирует состояние банки по умолчанию напрямую от провайдера
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetProviderStatus(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		switch {
		case errors.Is(err, jars.ErrJarNotFound):
			h.logger.Warn("GET /jar - Jar not found")
			handlers.RespondNotFound(w, msgJarNotFound)

		case errors.Is(err, jars.ErrProviderDisabled), errors.Is(err, jars.ErrInvalidInput):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgProviderDisabled)

		default:
			h.logger.Error("GET /jar - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Cache-Control", cacheControlValue)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/jars
// Возвращает все банки с локально накопленными суммами
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /jars - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSync POST /api/v1/jars/{externalId}/sync
// Принудительно подтягивает баланс банки от провайдера
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	externalID := mux.Vars(r)["externalId"]
	if externalID == "" {
		handlers.RespondBadRequest(w, msgInvalidJarID)
		return
	}

	result, err := h.service.Sync(r.Context(), externalID)
	if err != nil {
		switch {
		case errors.Is(err, jars.ErrJarNotFound):
			h.logger.Warn("POST /jars/{externalId}/sync - Jar not found: %s", externalID)
			handlers.RespondNotFound(w, msgJarNotFound)

		case errors.Is(err, jars.ErrProviderDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgProviderDisabled)

		case errors.Is(err, jars.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidJarID)

		default:
			h.logger.Error("POST /jars/{externalId}/sync - Failed: jar=%s, error=%v", externalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /jars/{externalId}/sync - Jar %s synced", externalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
