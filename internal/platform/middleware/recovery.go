package middleware

import (
	"fmt"
	"healthgate/internal/platform/logger"
	"net/http"
	"runtime/debug"
)

// Recovery turns a panic into a 500 written by respond. With a nil respond
// a plain-text 500 is written.
func Recovery(log logger.Logger, respond func(w http.ResponseWriter, r *http.Request)) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.FromContextOr(r.Context(), log).Error("Panic recovered",
						logger.String("method", r.Method),
						logger.String("url", r.URL.Path),
						logger.String("remote_addr", r.RemoteAddr),
						logger.String("user_agent", r.UserAgent()),
						logger.String("panic", fmt.Sprintf("%v", err)),
						logger.String("stack", string(debug.Stack())),
					)

					w.Header().Set("Connection", "close")

					if respond == nil {
						http.Error(w, "Internal Server Error", http.StatusInternalServerError)
						return
					}
					respond(w, r)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
