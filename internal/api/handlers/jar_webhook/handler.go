package jar_webhook

import (
	"errors"
	"net/http"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
	"github.com/murlyka/CatCafe-BookingService/internal/service/jars"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle GET/POST /api/v1/jars/webhook
// GET - проверка доступности вебхука при его регистрации у провайдера
// POST - событие выписки по банке; локальная сумма перезаписывается
// балансом из события, поэтому повторная доставка безопасна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		w.WriteHeader(http.StatusOK)
		return
	}

	var webhook StatementWebhook
	if err := handlers.DecodeJSON(r, &webhook); err != nil {
		h.logger.Warn("POST /jars/webhook - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Интересуют только события выписки, остальные подтверждаем без обработки
	if webhook.Type != webhookTypeStatementItem {
		h.logger.Info("POST /jars/webhook - Ignoring event type %q", webhook.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	err := h.service.ApplyStatement(r.Context(), webhook.Data.Account, webhook.Data.StatementItem.Balance)
	if err != nil {
		// Неотслеживаемую банку подтверждаем, чтобы провайдер не ретраил
		if errors.Is(err, jars.ErrJarNotFound) || errors.Is(err, jars.ErrInvalidInput) {
			h.logger.Warn("POST /jars/webhook - Untracked jar %s", webhook.Data.Account)
			w.WriteHeader(http.StatusOK)
			return
		}

		h.logger.Error("POST /jars/webhook - Failed: jar=%s, error=%v", webhook.Data.Account, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /jars/webhook - Jar %s balance applied", webhook.Data.Account)
	w.WriteHeader(http.StatusOK)
}
