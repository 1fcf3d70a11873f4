package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// recoveredBody matches the generic failure envelope of the API handlers.
const recoveredBody = `{"error":"Failed to process request"}` + "\n"

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with 500 and the failure envelope.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(recoveredBody)) //nolint:errcheck
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
