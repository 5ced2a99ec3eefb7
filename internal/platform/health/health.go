package health

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type Status string

const (
	StatusUp      Status = "UP"
	StatusWarning Status = "WARNING"
	StatusDown    Status = "DOWN"
)

// severity orders statuses DOWN > WARNING > UP. Unknown values rank as DOWN.
func (s Status) severity() int {
	switch s {
	case StatusUp:
		return 0
	case StatusWarning:
		return 1
	default:
		return 2
	}
}

// Worse returns the more severe of the two statuses.
func Worse(a, b Status) Status {
	if b.severity() > a.severity() {
		return b
	}
	return a
}

// Overall folds component statuses into one verdict: DOWN if any is DOWN,
// else WARNING if any is WARNING, else UP. No components means UP.
func Overall(statuses ...Status) Status {
	overall := StatusUp
	for _, s := range statuses {
		overall = Worse(overall, s)
	}
	return overall
}

// Outcome is what a probe reports about its subsystem.
type Outcome struct {
	Status Status
	Detail map[string]any
}

func Up(detail map[string]any) Outcome {
	return Outcome{Status: StatusUp, Detail: detail}
}

func Warning(detail map[string]any) Outcome {
	return Outcome{Status: StatusWarning, Detail: detail}
}

func Down(detail map[string]any) Outcome {
	return Outcome{Status: StatusDown, Detail: detail}
}

// Probe checks one subsystem. A returned error means the probe itself
// failed; a healthy probe that finds its subsystem unhealthy returns a DOWN
// outcome and no error.
type Probe interface {
	Name() string
	Check(ctx context.Context) (Outcome, error)
}

type probeFunc struct {
	name string
	fn   func(context.Context) (Outcome, error)
}

// ProbeFunc adapts a function to the Probe interface.
func ProbeFunc(name string, fn func(context.Context) (Outcome, error)) Probe {
	return &probeFunc{name: name, fn: fn}
}

func (p *probeFunc) Name() string {
	return p.name
}

func (p *probeFunc) Check(ctx context.Context) (Outcome, error) {
	return p.fn(ctx)
}

// ProbeFailure wraps whatever went wrong while running a probe.
type ProbeFailure struct {
	Probe string
	Err   error
}

func (e *ProbeFailure) Error() string {
	return fmt.Sprintf("probe %s failed: %v", e.Probe, e.Err)
}

func (e *ProbeFailure) Unwrap() error {
	return e.Err
}

// ProbeResult is one probe's contribution to a report. Error is set only
// when the probe itself failed, never for a substantive DOWN.
type ProbeResult struct {
	Name    string         `json:"-"`
	Status  Status         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`

	// Failure keeps the unredacted cause for logs; it is never serialized.
	Failure *ProbeFailure `json:"-"`
}

// HealthReport is the composite of a set of probe results.
type HealthReport struct {
	Status     Status
	Components []ProbeResult
}

func NewHealthReport(components []ProbeResult) HealthReport {
	statuses := make([]Status, len(components))
	for i, c := range components {
		statuses[i] = c.Status
	}
	return HealthReport{
		Status:     Overall(statuses...),
		Components: components,
	}
}

// Component looks up a result by probe name.
func (r HealthReport) Component(name string) (ProbeResult, bool) {
	for _, c := range r.Components {
		if c.Name == name {
			return c, true
		}
	}
	return ProbeResult{}, false
}

// MarshalJSON writes components as an object keyed by probe name, in probe
// order.
func (r HealthReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"status":`)
	status, err := json.Marshal(r.Status)
	if err != nil {
		return nil, err
	}
	buf.Write(status)
	buf.WriteString(`,"components":{`)
	for i, c := range r.Components {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}
