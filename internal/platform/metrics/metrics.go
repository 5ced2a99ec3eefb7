package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"healthgate/internal/core/ports"
)

const MeterName = "healthgate"

var (
	requestBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	probeBuckets   = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
)

var _ ports.MetricsSink = (*Provider)(nil)

// Provider owns the gateway's instruments and the private registry they are
// exported through.
type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter
	AuthFailures     metric.Int64Counter
	ProbeDuration    metric.Float64Histogram
	ProbeFailures    metric.Int64Counter
	registry         *prometheus.Registry
}

// instruments collects creation errors so NewProvider can report them once.
type instruments struct {
	meter metric.Meter
	errs  []error
}

func (i *instruments) counter(name, description string) metric.Int64Counter {
	c, err := i.meter.Int64Counter(name, metric.WithDescription(description))
	i.errs = append(i.errs, err)
	return c
}

func (i *instruments) seconds(name, description string, buckets []float64) metric.Float64Histogram {
	h, err := i.meter.Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(buckets...),
	)
	i.errs = append(i.errs, err)
	return h
}

func (i *instruments) gauge(name, description string) metric.Int64UpDownCounter {
	g, err := i.meter.Int64UpDownCounter(name, metric.WithDescription(description))
	i.errs = append(i.errs, err)
	return g
}

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(meterProvider)

	in := &instruments{meter: meterProvider.Meter(MeterName)}
	p := &Provider{
		RequestsTotal:    in.counter("http_requests", "Total number of HTTP requests"),
		RequestDuration:  in.seconds("http_request_duration", "HTTP request duration in seconds", requestBuckets),
		RequestsInFlight: in.gauge("http_requests_in_flight", "Number of HTTP requests currently in flight"),
		AuthFailures:     in.counter("auth_failures", "Rejected requests by security domain and reason"),
		ProbeDuration:    in.seconds("health_probe_duration", "Health probe duration in seconds", probeBuckets),
		ProbeFailures:    in.counter("health_probe_failures", "Health probes that reported DOWN"),
		registry:         registry,
	}
	if err := errors.Join(in.errs...); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) AuthFailed(ctx context.Context, domain, reason string) {
	p.AuthFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("reason", reason),
	))
}

func (p *Provider) ProbeObserved(ctx context.Context, probe, status string, duration time.Duration) {
	p.ProbeDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("probe", probe),
		attribute.String("status", status),
	))
	if status == "DOWN" {
		p.ProbeFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("probe", probe)))
	}
}

// Handler serves the registry in the Prometheus text format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
