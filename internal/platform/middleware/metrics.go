package middleware

import (
	"healthgate/internal/platform/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const unmatchedRoute = "unmatched"

// RouteLabeler maps a request path to a low-cardinality label, typically
// its access class.
type RouteLabeler func(path string) string

// MetricsMiddleware records request count, latency and in-flight gauge.
// Requests are labelled by chi route pattern rather than raw path so that
// scans of unknown URLs do not explode the series count.
func MetricsMiddleware(provider *metrics.Provider, classify RouteLabeler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			provider.RequestsInFlight.Add(ctx, 1)
			defer provider.RequestsInFlight.Add(ctx, -1)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("route", routePattern(r)),
				attribute.String("class", routeClass(classify, r.URL.Path)),
				attribute.String("status", strconv.Itoa(ww.Status())),
			)
			provider.RequestsTotal.Add(ctx, 1, attrs)
			provider.RequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

func routeClass(classify RouteLabeler, path string) string {
	if classify == nil {
		return ""
	}
	return classify(path)
}
