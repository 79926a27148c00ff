package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/murlyka/CatCafe-BookingService/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет админский токен в заголовке X-Admin-Token
// Пустой сконфигурированный токен закрывает доступ полностью
func AdminAuth(token string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Admin-Token")

			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				log.Warn("%s %s - Admin auth failed", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "недостаточно прав")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
