package middleware

import (
	"net/http"
	"runtime/debug"

	"perros-api/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea con nuestro logger
// y responde el mismo JSON de error que los handlers.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic en handler", map[string]any{
					"panic":      rec,
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": GetRequestID(r.Context()),
					"stack":      string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Error interno"}` + "\n"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
