package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	probes "healthgate/internal/adapters/health"
	"healthgate/internal/adapters/http/response"
	"healthgate/internal/core/usecase/gateway"
	"healthgate/internal/platform/health"
	httpErrors "healthgate/internal/platform/http"
	"healthgate/internal/platform/logger"
)

const (
	CodeSystemPartiallyDown = "SYSTEM_PARTIALLY_DOWN"
	CodeDBConnection        = "DB_CONNECTION_ERROR"
	CodeSystemCheck         = "SYSTEM_CHECK_ERROR"
	CodeDiskCheck           = "DISK_CHECK_ERROR"

	DefaultTimeout = 10 * time.Second
)

type component struct {
	probe       string
	okMessage   string
	warnMessage string
	downMessage string
	downCode    string
}

var components = map[gateway.Target]component{
	gateway.TargetDatabase: {
		probe:       probes.DatabaseProbeName,
		okMessage:   "Database health check completed successfully",
		downMessage: "Database connection failed",
		downCode:    CodeDBConnection,
	},
	gateway.TargetSystem: {
		probe:       probes.SystemProbeName,
		okMessage:   "System resources check completed successfully",
		downMessage: "Error checking system resources",
		downCode:    CodeSystemCheck,
	},
	gateway.TargetDisk: {
		probe:       probes.DiskProbeName,
		okMessage:   "Disk health check completed successfully",
		warnMessage: "Disk space is running low",
		downMessage: "Error checking disk health",
		downCode:    CodeDiskCheck,
	},
}

// Handler writes the monitoring responses the gateway serves once an API
// key has been accepted.
type Handler struct {
	aggregator health.AggregatorInterface
	metrics    http.Handler
	timeout    time.Duration
}

func NewHandler(aggregator health.AggregatorInterface, metrics http.Handler, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{
		aggregator: aggregator,
		metrics:    metrics,
		timeout:    timeout,
	}
}

// Serve answers a monitoring request for target.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request, target gateway.Target) error {
	if target == gateway.TargetMetrics {
		if h.metrics == nil {
			return httpErrors.NewNotFound("Metrics are not exposed", nil)
		}
		h.metrics.ServeHTTP(w, r)
		return nil
	}

	if comp, ok := components[target]; ok {
		return h.component(w, r, target, comp)
	}
	return h.Overall(w, r)
}

// Overall runs every registered probe and writes the composite report.
func (h *Handler) Overall(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report := h.aggregator.Aggregate(ctx)

	if report.Status == health.StatusDown {
		logger.FromContext(ctx).Warn("Health check reported DOWN",
			logger.String("status", string(report.Status)))
		return httpErrors.NewServiceUnavailable("One or more system components are down", nil).
			WithCode(CodeSystemPartiallyDown).
			WithDetails(report)
	}

	response.Success(w, r, http.StatusOK, "System health check completed successfully", report)
	return nil
}

func (h *Handler) component(w http.ResponseWriter, r *http.Request, target gateway.Target, comp component) error {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.aggregator.Check(ctx, comp.probe)
	if errors.Is(err, health.ErrUnknownProbe) {
		return httpErrors.NewNotFound(fmt.Sprintf("No probe registered for %s", target.Description()), err)
	}
	if err != nil {
		return err
	}

	switch result.Status {
	case health.StatusDown:
		return httpErrors.NewServiceUnavailable(comp.downMessage, nil).
			WithCode(comp.downCode).
			WithDetails(result)
	case health.StatusWarning:
		message := comp.warnMessage
		if message == "" {
			message = comp.okMessage
		}
		response.Success(w, r, http.StatusOK, message, result)
	default:
		response.Success(w, r, http.StatusOK, comp.okMessage, result)
	}
	return nil
}
