package middleware

import (
	"healthgate/internal/platform/logger"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const RequestIDHeader = "X-Request-Id"

// RequestLogger attaches a request-scoped logger to the context and writes
// one access line per request. Query strings are never logged since they
// may carry credentials.
func RequestLogger(baseLogger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqID := middleware.GetReqID(r.Context())
			if reqID != "" {
				ww.Header().Set(RequestIDHeader, reqID)
			}
			contextLogger := baseLogger.With(logger.String("request_id", reqID))
			ctx := logger.WithLogger(r.Context(), contextLogger)

			next.ServeHTTP(ww, r.WithContext(ctx))

			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("remote_addr", r.RemoteAddr),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.String("duration", time.Since(start).String()),
			}

			switch status := ww.Status(); {
			case status >= http.StatusInternalServerError:
				contextLogger.Error("HTTP Request", fields...)
			case status == http.StatusUnauthorized || status == http.StatusTooManyRequests:
				contextLogger.Warn("HTTP Request", fields...)
			default:
				contextLogger.Info("HTTP Request", fields...)
			}
		})
	}
}
