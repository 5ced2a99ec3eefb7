package http

import (
	"healthgate/internal/platform/logger"
	"healthgate/internal/platform/metrics"
	platformMiddleware "healthgate/internal/platform/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"healthgate/internal/adapters/http/auth"
	"healthgate/internal/adapters/http/response"
	"healthgate/internal/config"
	domain "healthgate/internal/core/domain/auth"
	httpErrors "healthgate/internal/platform/http"
)

type RouterDependencies struct {
	Config          *config.HttpConfig
	Logger          logger.Logger
	Classifier      *domain.Classifier
	Gateway         *GatewayMiddleware
	AuthHandler     *auth.Handler
	MetricsProvider *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider, routeLabeler(deps.Classifier)))
	r.Use(platformMiddleware.Recovery(log, response.InternalError))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(cfg.RateLimit.GlobalRequests, cfg.RateLimit.Global()))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerIP, cfg.RateLimit.PerIP()))

	// Monitoring paths are answered by the gateway itself.
	r.Use(deps.Gateway.Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, r, httpErrors.NewNotFound("Resource not found", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, r, httpErrors.New(http.StatusMethodNotAllowed, "Method not allowed", nil))
	})

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/auth/validate", ErrorHandler(deps.AuthHandler.Validate))
		apiRouter.Route("/me", func(meRouter chi.Router) {
			meRouter.Get("/", ErrorHandler(deps.AuthHandler.Me))
			meRouter.Get("/roles", ErrorHandler(deps.AuthHandler.Roles))
		})
	})

	return r
}

func routeLabeler(classifier *domain.Classifier) platformMiddleware.RouteLabeler {
	if classifier == nil {
		return nil
	}
	return func(path string) string {
		return string(classifier.Classify(path))
	}
}
