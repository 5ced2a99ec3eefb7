package http

import (
	"errors"
	httpErrors "healthgate/internal/platform/http"
	"healthgate/internal/platform/logger"
	"net/http"

	"healthgate/internal/adapters/http/response"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders a handler's error as an ERROR envelope. Errors that
// are not *httpErrors.Error become a generic 500; their text only goes to
// the log.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		contextLogger := logger.FromContext(r.Context())

		var httpErr *httpErrors.Error
		if errors.As(err, &httpErr) {
			if httpErr.Err != nil {
				contextLogger.Warn("Request failed",
					logger.String("path", r.URL.Path),
					logger.String("code", httpErr.Code),
					logger.Error(httpErr.Err))
			}
			response.RespondError(w, r, httpErr)
			return
		}

		contextLogger.Error("Unexpected server error",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("remote_addr", r.RemoteAddr),
			logger.Error(err))
		response.InternalError(w, r)
	}
}
