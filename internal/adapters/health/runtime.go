package health

import (
	"context"
	"math"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"

	"healthgate/internal/platform/health"
)

// RuntimeProbe snapshots the Go runtime and the host process. It reports
// UP whenever the snapshot can be taken.
type RuntimeProbe struct {
	started  time.Time
	initHeap uint64
	proc     *process.Process
}

var _ health.Probe = (*RuntimeProbe)(nil)

func NewRuntimeProbe() *RuntimeProbe {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	p := &RuntimeProbe{
		started:  time.Now(),
		initHeap: ms.HeapSys,
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err == nil {
		p.proc = proc
		if created, err := proc.CreateTime(); err == nil {
			p.started = time.UnixMilli(created)
		}
	}
	return p
}

func (p *RuntimeProbe) Name() string {
	return SystemProbeName
}

func (p *RuntimeProbe) Check(ctx context.Context) (health.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return health.Outcome{}, err
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return health.Up(map[string]any{
		"heap":    p.heap(&ms),
		"threads": p.threads(ctx),
		"gc":      gcStats(&ms),
		"runtime": p.runtimeInfo(ctx),
	}), nil
}

func (p *RuntimeProbe) heap(ms *runtime.MemStats) map[string]any {
	// A negative input reads the limit without changing it.
	limit := debug.SetMemoryLimit(-1)
	maxHeap := int64(-1)
	denominator := float64(ms.HeapSys)
	if limit != math.MaxInt64 {
		maxHeap = limit
		denominator = float64(limit)
	}

	usage := 0.0
	if denominator > 0 {
		usage = round2(float64(ms.HeapAlloc) / denominator * 100)
	}

	return map[string]any{
		"used":            ms.HeapAlloc,
		"committed":       ms.HeapSys,
		"max":             maxHeap,
		"init":            p.initHeap,
		"usagePercentage": usage,
	}
}

func (p *RuntimeProbe) threads(ctx context.Context) map[string]any {
	threads := map[string]any{
		"goroutines": runtime.NumGoroutine(),
		// Go has no lock-ordering deadlock detector short of a fatal error.
		"deadlockedThreads": 0,
	}
	if p.proc != nil {
		if n, err := p.proc.NumThreadsWithContext(ctx); err == nil {
			threads["osThreads"] = n
		}
	}
	return threads
}

func gcStats(ms *runtime.MemStats) map[string]any {
	stats := map[string]any{
		"numGC":        ms.NumGC,
		"forcedGC":     ms.NumForcedGC,
		"pauseTotalMs": time.Duration(ms.PauseTotalNs).Milliseconds(),
	}
	if ms.LastGC > 0 {
		stats["lastGC"] = time.Unix(0, int64(ms.LastGC)).UTC().Format(time.RFC3339)
	}
	return stats
}

func (p *RuntimeProbe) runtimeInfo(ctx context.Context) map[string]any {
	info := map[string]any{
		"availableProcessors": runtime.NumCPU(),
		"uptimeMs":            time.Since(p.started).Milliseconds(),
		"startTime":           p.started.UTC().Format(time.RFC3339),
		"goVersion":           runtime.Version(),
		"os":                  runtime.GOOS,
		"arch":                runtime.GOARCH,
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		info["systemLoad"] = round2(avg.Load1)
	}
	return info
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
