package gateway

import (
	"path"
	"strings"
)

// MetricsPath is the one monitoring path that serves the metrics exposition.
const MetricsPath = "/actuator/prometheus"

// Target is the monitoring resource a request addresses, taken from the
// trailing path segment.
type Target int

const (
	TargetOverall Target = iota
	TargetDatabase
	TargetSystem
	TargetDisk
	TargetMetrics
)

// ParseTarget maps a monitoring path to its target. Anything that does not
// end in a known probe segment addresses the composite report.
func ParseTarget(p string) Target {
	p = path.Clean("/" + p)
	if strings.EqualFold(p, MetricsPath) {
		return TargetMetrics
	}

	switch strings.ToLower(path.Base(p)) {
	case "database":
		return TargetDatabase
	case "system":
		return TargetSystem
	case "disk":
		return TargetDisk
	default:
		return TargetOverall
	}
}

// Description is the human-readable name used in client messages.
func (t Target) Description() string {
	switch t {
	case TargetDatabase:
		return "database health"
	case TargetSystem:
		return "system health"
	case TargetDisk:
		return "disk health"
	case TargetMetrics:
		return "metrics"
	default:
		return "overall health"
	}
}

func (t Target) String() string {
	switch t {
	case TargetDatabase:
		return "database"
	case TargetSystem:
		return "system"
	case TargetDisk:
		return "disk"
	case TargetMetrics:
		return "prometheus"
	default:
		return "overall"
	}
}
