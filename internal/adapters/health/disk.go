package health

import (
	"context"
	"errors"

	"github.com/shirou/gopsutil/v4/disk"

	"healthgate/internal/platform/health"
	"healthgate/internal/platform/logger"
)

const (
	DefaultDiskWarningThreshold = 10.0

	bytesPerGB = 1024 * 1024 * 1024
)

var ErrNoDiskUsage = errors.New("no filesystem usage could be read")

type (
	partitionsFunc func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usageFunc      func(ctx context.Context, path string) (*disk.UsageStat, error)
)

// DiskProbe reports capacity for each filesystem root. It turns WARNING
// when any root has less free space than the threshold, in percent.
type DiskProbe struct {
	paths      []string
	threshold  float64
	logger     logger.Logger
	partitions partitionsFunc
	usage      usageFunc
}

var _ health.Probe = (*DiskProbe)(nil)

// NewDiskProbe checks the given paths, or every mounted partition when
// paths is empty. A threshold of zero disables the warning; a negative one
// selects DefaultDiskWarningThreshold.
func NewDiskProbe(paths []string, threshold float64, log logger.Logger) *DiskProbe {
	if threshold < 0 {
		threshold = DefaultDiskWarningThreshold
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &DiskProbe{
		paths:      paths,
		threshold:  threshold,
		logger:     log,
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
	}
}

func (p *DiskProbe) Name() string {
	return DiskProbeName
}

func (p *DiskProbe) Check(ctx context.Context) (health.Outcome, error) {
	partitions := make(map[string]any)
	low := false

	for _, root := range p.roots(ctx) {
		usage, err := p.usage(ctx, root)
		if err != nil {
			p.logger.Warn("Failed to read filesystem usage", logger.String("path", root), logger.Error(err))
			continue
		}
		if usage.Total == 0 {
			continue
		}

		// Free in gopsutil is what an unprivileged user can still write;
		// Total-Used also counts blocks reserved for root.
		unallocated := usage.Total - usage.Used
		partitions[root] = map[string]any{
			"totalSpace":      toGB(usage.Total),
			"freeSpace":       toGB(unallocated),
			"usableSpace":     toGB(usage.Free),
			"usagePercentage": round2(float64(usage.Used) / float64(usage.Total) * 100),
		}

		if float64(unallocated)/float64(usage.Total)*100 < p.threshold {
			low = true
		}
	}

	if len(partitions) == 0 {
		return health.Outcome{}, ErrNoDiskUsage
	}

	detail := map[string]any{
		"partitions": partitions,
		"threshold":  p.threshold,
	}
	if low {
		return health.Warning(detail), nil
	}
	return health.Up(detail), nil
}

func (p *DiskProbe) roots(ctx context.Context) []string {
	if len(p.paths) > 0 {
		return p.paths
	}

	parts, err := p.partitions(ctx, false)
	if err != nil {
		p.logger.Warn("Failed to list partitions, falling back to /", logger.Error(err))
		return []string{"/"}
	}

	seen := make(map[string]struct{}, len(parts))
	roots := make([]string, 0, len(parts))
	for _, part := range parts {
		if _, dup := seen[part.Mountpoint]; dup || part.Mountpoint == "" {
			continue
		}
		seen[part.Mountpoint] = struct{}{}
		roots = append(roots, part.Mountpoint)
	}
	if len(roots) == 0 {
		return []string{"/"}
	}
	return roots
}

func toGB(bytes uint64) float64 {
	return round2(float64(bytes) / bytesPerGB)
}
