package ports

import (
	"context"
	"time"
)

// MetricsSink receives fire-and-forget counters and timers from the gateway
// and the health subsystem.
type MetricsSink interface {
	AuthFailed(ctx context.Context, domain, reason string)
	ProbeObserved(ctx context.Context, probe, status string, duration time.Duration)
}

type nopMetrics struct{}

// NopMetrics discards everything.
func NopMetrics() MetricsSink {
	return nopMetrics{}
}

func (nopMetrics) AuthFailed(context.Context, string, string)                   {}
func (nopMetrics) ProbeObserved(context.Context, string, string, time.Duration) {}
