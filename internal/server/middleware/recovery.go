package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/224solutions/offline-sync/pkg/api"
)

// RecoveryMiddleware перехватывает панику обработчика, логирует стек
// и отвечает JSON-ошибкой в формате api.ErrorResponse, который
// клиент синхронизации умеет декодировать. Детали паники клиенту
// не раскрываются.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						"error", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"remote_addr", r.RemoteAddr,
						"stack", string(debug.Stack()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					resp := api.ErrorResponse{Error: "internal server error"}
					if err := json.NewEncoder(w).Encode(resp); err != nil {
						logger.Error("Failed to encode error response", "error", err)
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
