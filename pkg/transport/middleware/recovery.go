package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/unidict-shared/pkg/transport/rest"
	"github.com/heartmarshall/unidict-shared/pkg/types"
)

// Recovery returns middleware that recovers from panics, logs the value
// with a stack trace, and responds with an INTERNAL_ERROR APIError.
func Recovery(logger *slog.Logger) Middleware {
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
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				rest.WriteError(w, r, types.NewAPIError(types.ErrCodeInternal, "internal server error"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
