package health

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"healthgate/internal/core/ports"
	"healthgate/internal/platform/logger"
)

var (
	ErrProbeTimeout = errors.New("probe timed out")
	ErrProbePanic   = errors.New("probe panicked")
)

// Runner executes a single probe inside a failure boundary. Whatever the
// probe does (return an error, panic, hang past the timeout) the caller
// gets a ProbeResult back.
type Runner struct {
	timeout time.Duration
	metrics ports.MetricsSink
	logger  logger.Logger
}

func NewRunner(timeout time.Duration, metrics ports.MetricsSink, log logger.Logger) *Runner {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if metrics == nil {
		metrics = ports.NopMetrics()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Runner{
		timeout: timeout,
		metrics: metrics,
		logger:  log,
	}
}

type probeReturn struct {
	outcome Outcome
	err     error
}

func (r *Runner) Run(ctx context.Context, probe Probe) ProbeResult {
	name := probe.Name()
	start := time.Now()

	probeCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Buffered so an abandoned probe can still deliver and exit.
	done := make(chan probeReturn, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error("Health probe panicked",
					logger.String("probe", name),
					logger.String("panic", fmt.Sprintf("%v", p)),
					logger.String("stack", string(debug.Stack())),
				)
				done <- probeReturn{err: fmt.Errorf("%w: %v", ErrProbePanic, p)}
			}
		}()
		outcome, err := probe.Check(probeCtx)
		done <- probeReturn{outcome: outcome, err: err}
	}()

	var ret probeReturn
	select {
	case ret = <-done:
	case <-probeCtx.Done():
		ret = probeReturn{err: ErrProbeTimeout}
		if errors.Is(probeCtx.Err(), context.Canceled) {
			ret.err = probeCtx.Err()
		}
	}

	result := r.toResult(name, ret)
	r.metrics.ProbeObserved(ctx, name, string(result.Status), time.Since(start))
	return result
}

func (r *Runner) toResult(name string, ret probeReturn) ProbeResult {
	if ret.err != nil {
		failure := &ProbeFailure{Probe: name, Err: ret.err}
		r.logger.Error("Health probe failed", logger.String("probe", name), logger.Error(ret.err))
		return ProbeResult{
			Name:    name,
			Status:  StatusDown,
			Error:   redact(name, ret.err),
			Failure: failure,
		}
	}

	status := ret.outcome.Status
	if status == "" {
		status = StatusUp
	}
	return ProbeResult{
		Name:    name,
		Status:  status,
		Details: ret.outcome.Detail,
	}
}

// redact turns a probe error into text safe to hand to monitoring callers.
// The raw error is only ever logged.
func redact(name string, err error) string {
	switch {
	case errors.Is(err, ErrProbeTimeout), errors.Is(err, context.DeadlineExceeded):
		return name + " probe timed out"
	case errors.Is(err, context.Canceled):
		return name + " probe cancelled"
	default:
		return name + " probe failed"
	}
}
