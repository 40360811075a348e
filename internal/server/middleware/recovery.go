package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recovery создает middleware для восстановления после паники.
// Перехватывает panic, логирует стек вызовов и возвращает 500 в формате API.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler прерывает ответ намеренно
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic recovered",
					"error", rec,
					"request_id", chimw.GetReqID(r.Context()),
					"method", r.Method,
					"route", routePattern(r),
					"stack", string(debug.Stack()),
				)

				// Детали паники клиенту не раскрываются
				writeError(w, "Unexpected server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
