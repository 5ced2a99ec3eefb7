package health

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

var ErrUnknownProbe = errors.New("unknown probe")

type AggregatorInterface interface {
	Register(probe Probe)
	Aggregate(ctx context.Context) HealthReport
	Check(ctx context.Context, name string) (ProbeResult, error)
	Names() []string
}

type Aggregator struct {
	probes   []Probe
	runner   *Runner
	parallel bool
	mu       sync.RWMutex
}

// Compile-time interface check
var _ AggregatorInterface = (*Aggregator)(nil)

type Option func(*Aggregator)

// Sequential runs probes one after another in registration order.
func Sequential() Option {
	return func(a *Aggregator) {
		a.parallel = false
	}
}

func NewAggregator(runner *Runner, opts ...Option) *Aggregator {
	if runner == nil {
		runner = NewRunner(0, nil, nil)
	}
	a := &Aggregator{
		probes:   make([]Probe, 0),
		runner:   runner,
		parallel: true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register adds a probe. Nil probes are ignored; a probe with an already
// registered name replaces the earlier one in place.
func (a *Aggregator) Register(probe Probe) {
	if probe == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, p := range a.probes {
		if p.Name() == probe.Name() {
			a.probes[i] = probe
			return
		}
	}
	a.probes = append(a.probes, probe)
}

func (a *Aggregator) Names() []string {
	probes := a.snapshot()
	names := make([]string, len(probes))
	for i, p := range probes {
		names[i] = p.Name()
	}
	return names
}

// Aggregate runs every registered probe and folds the results. A probe that
// fails, panics or times out shows up as a DOWN component; it never aborts
// the other probes.
func (a *Aggregator) Aggregate(ctx context.Context) HealthReport {
	probes := a.snapshot()
	results := make([]ProbeResult, len(probes))

	if !a.parallel {
		for i, p := range probes {
			results[i] = a.runner.Run(ctx, p)
		}
		return NewHealthReport(results)
	}

	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			results[i] = a.runner.Run(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	return NewHealthReport(results)
}

// Check runs a single probe by name.
func (a *Aggregator) Check(ctx context.Context, name string) (ProbeResult, error) {
	for _, p := range a.snapshot() {
		if p.Name() == name {
			return a.runner.Run(ctx, p), nil
		}
	}
	return ProbeResult{}, ErrUnknownProbe
}

func (a *Aggregator) snapshot() []Probe {
	a.mu.RLock()
	defer a.mu.RUnlock()
	probes := make([]Probe, len(a.probes))
	copy(probes, a.probes)
	return probes
}
