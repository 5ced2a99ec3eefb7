package main

import (
	authAdapter "healthgate/internal/adapters/auth"
	"healthgate/internal/adapters/database"
	"healthgate/internal/adapters/health"
	httpAdapter "healthgate/internal/adapters/http"
	authHttp "healthgate/internal/adapters/http/auth"
	healthHttp "healthgate/internal/adapters/http/health"
	"healthgate/internal/adapters/validator"
	"healthgate/internal/config"
	"healthgate/internal/core/domain/auth"
	"healthgate/internal/core/ports"
	"healthgate/internal/core/usecase/gateway"
	platformHealth "healthgate/internal/platform/health"
	"healthgate/internal/platform/logger"
	"healthgate/internal/platform/metrics"

	"go.uber.org/fx"
)

func main() {
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(config.LoadSecurity),
	fx.Provide(config.LoadMonitoring),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return cfg.Logging()
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),
	fx.Provide(func(p *metrics.Provider) ports.MetricsSink { return p }),
	fx.Provide(database.NewDatabaseLifecycle),
	fx.Provide(func(db *database.Lifecycle) ports.PoolProvider { return db }),

	// Health Probes
	fx.Provide(fx.Annotate(
		func(pools ports.PoolProvider, cfg *config.MonitoringConfig, log logger.Logger) *health.DatabaseProbe {
			return health.NewDatabaseProbe(pools, cfg.DBValidationTimeout, log)
		},
		fx.As(new(platformHealth.Probe)),
		fx.ResultTags(`group:"health_probes"`),
	)),
	fx.Provide(fx.Annotate(health.NewRuntimeProbe, fx.As(new(platformHealth.Probe)), fx.ResultTags(`group:"health_probes"`))),
	fx.Provide(fx.Annotate(
		func(cfg *config.MonitoringConfig, log logger.Logger) *health.DiskProbe {
			return health.NewDiskProbe(cfg.DiskPaths, cfg.DiskWarningThreshold, log)
		},
		fx.As(new(platformHealth.Probe)),
		fx.ResultTags(`group:"health_probes"`),
	)),
	fx.Provide(func(cfg *config.MonitoringConfig, sink ports.MetricsSink, log logger.Logger) *platformHealth.Runner {
		return platformHealth.NewRunner(cfg.ProbeTimeout, sink, log)
	}),
	fx.Provide(fx.Annotate(
		func(probes []platformHealth.Probe, runner *platformHealth.Runner, monitoring *config.MonitoringConfig, security *config.SecurityConfig) *platformHealth.Aggregator {
			var opts []platformHealth.Option
			if !monitoring.Parallel {
				opts = append(opts, platformHealth.Sequential())
			}
			a := platformHealth.NewAggregator(runner, opts...)
			for _, probe := range orderProbes(probes) {
				a.Register(probe)
			}
			if monitoring.IssuerProbe && security.Auth0.Issuer != "" {
				a.Register(health.NewIssuerProbe(health.DiscoveryURL(security.Auth0.Issuer), monitoring.ProbeTimeout))
			}
			return a
		},
		fx.ParamTags(`group:"health_probes"`),
		fx.As(new(platformHealth.AggregatorInterface)),
	)),

	// Security
	fx.Provide(authAdapter.NewVerifier),
	fx.Provide(func(cfg *config.SecurityConfig) *auth.Classifier {
		return auth.NewClassifier(cfg.Routes.Public, cfg.Routes.Monitoring)
	}),
	fx.Provide(func(cfg *config.SecurityConfig, classifier *auth.Classifier, verifier ports.TokenVerifier, sink ports.MetricsSink, log logger.Logger) *gateway.Gateway {
		keys := auth.NewKeyCredential(cfg.HealthCheck.APIKey, cfg.HealthCheck.Enabled)
		if keys.Enabled() && !keys.Configured() {
			log.Warn("Health check API key is not set, monitoring routes will reject every request")
		}
		if cfg.IsProduction() && !cfg.Auth0.Configured() {
			log.Warn("No token signing key source configured, protected routes will reject every request")
		}
		return gateway.NewGateway(
			classifier,
			keys,
			auth.NewTokenCredential(cfg.Auth0.Host()),
			verifier,
			sink,
		)
	}),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(func(gw *gateway.Gateway) *authHttp.Handler {
		return authHttp.NewHandler(gw)
	}),
	fx.Provide(func(aggregator platformHealth.AggregatorInterface, provider *metrics.Provider, cfg *config.MonitoringConfig) *healthHttp.Handler {
		return healthHttp.NewHandler(aggregator, provider.Handler(), 2*cfg.ProbeTimeout)
	}),
	fx.Provide(func(gw *gateway.Gateway, monitoring *healthHttp.Handler, cfg *config.SecurityConfig) *httpAdapter.GatewayMiddleware {
		return httpAdapter.NewGatewayMiddleware(gw, monitoring, cfg.HealthCheck.Header)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, classifier *auth.Classifier, gw *httpAdapter.GatewayMiddleware, authHandler *authHttp.Handler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:          cfg,
			Logger:          log,
			Classifier:      classifier,
			Gateway:         gw,
			AuthHandler:     authHandler,
			MetricsProvider: metrics,
		}
	}),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, db *database.Lifecycle, srv *httpAdapter.Server) {
		lc.Append(fx.Hook{
			OnStart: db.Start,
			OnStop:  db.Stop,
		})
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)

// orderProbes puts the probes in report order: database, system, disk,
// then anything else in the order fx supplied it.
func orderProbes(probes []platformHealth.Probe) []platformHealth.Probe {
	rank := map[string]int{
		health.DatabaseProbeName: 0,
		health.SystemProbeName:   1,
		health.DiskProbeName:     2,
	}
	ordered := make([]platformHealth.Probe, 0, len(probes))
	for want := 0; want < len(rank); want++ {
		for _, p := range probes {
			if r, ok := rank[p.Name()]; ok && r == want {
				ordered = append(ordered, p)
			}
		}
	}
	for _, p := range probes {
		if _, ok := rank[p.Name()]; !ok {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
