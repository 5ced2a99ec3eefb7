package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"healthgate/internal/adapters/http/response"
	"healthgate/internal/core/domain/auth"
	"healthgate/internal/core/usecase/gateway"
	httpErrors "healthgate/internal/platform/http"
	"healthgate/internal/platform/logger"
)

const (
	DefaultAPIKeyHeader = "X-API-KEY"

	monitoringMethods = "GET, HEAD"
)

type Decider interface {
	Decide(ctx context.Context, req gateway.Request) gateway.Decision
}

// MonitoringServer writes the response for an authenticated monitoring
// request.
type MonitoringServer interface {
	Serve(w http.ResponseWriter, r *http.Request, target gateway.Target) error
}

type GatewayMiddleware struct {
	decider    Decider
	monitoring MonitoringServer
	keyHeader  string
}

func NewGatewayMiddleware(decider Decider, monitoring MonitoringServer, keyHeader string) *GatewayMiddleware {
	if keyHeader == "" {
		keyHeader = DefaultAPIKeyHeader
	}
	return &GatewayMiddleware{
		decider:    decider,
		monitoring: monitoring,
		keyHeader:  keyHeader,
	}
}

// Handler authenticates every request before routing. Public requests pass,
// protected ones are forwarded with their grant in the context, monitoring
// ones are answered here and never reach next.
func (m *GatewayMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forward, ok := m.handle(w, r)
		if ok {
			next.ServeHTTP(w, forward)
		}
	})
}

// handle returns the request to forward, or false when it already wrote
// the response. A panic inside the gateway becomes a redacted 500.
func (m *GatewayMiddleware) handle(w http.ResponseWriter, r *http.Request) (forward *http.Request, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromContext(r.Context()).Error("Gateway fault",
				logger.String("path", r.URL.Path),
				logger.String("panic", fmt.Sprintf("%v", rec)),
				logger.String("stack", string(debug.Stack())),
			)
			response.InternalError(w, r)
			forward, ok = nil, false
		}
	}()

	decision := m.decider.Decide(r.Context(), gateway.Request{
		Path:          r.URL.Path,
		APIKey:        r.Header.Get(m.keyHeader),
		Authorization: r.Header.Get("Authorization"),
	})

	switch decision.Action {
	case gateway.ActionPass:
		return r, true
	case gateway.ActionForward:
		return r.WithContext(auth.WithGrant(r.Context(), decision.Grant)), true
	case gateway.ActionServe:
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", monitoringMethods)
			response.RespondError(w, r, httpErrors.New(http.StatusMethodNotAllowed, "Method not allowed", nil))
			return nil, false
		}
		served := r.WithContext(auth.WithGrant(r.Context(), decision.Grant))
		ErrorHandler(func(w http.ResponseWriter, r *http.Request) error {
			return m.monitoring.Serve(w, r, decision.Target)
		})(w, served)
		return nil, false
	default:
		m.reject(w, r, decision)
		return nil, false
	}
}

func (m *GatewayMiddleware) reject(w http.ResponseWriter, r *http.Request, decision gateway.Decision) {
	if decision.Failure == nil {
		response.InternalError(w, r)
		return
	}

	var message string
	switch decision.Failure.Domain {
	case auth.RouteMonitoring:
		message = "Invalid or missing API key for " + decision.Target.Description()
	default:
		w.Header().Set("WWW-Authenticate", "Bearer")
		message = decision.Failure.Message()
	}

	response.RespondError(w, r, httpErrors.NewUnauthorized(message, decision.Failure))
}
