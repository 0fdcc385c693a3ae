package workload

import (
	"context"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
	"github.com/calebmor/gauntlet/internal/sysinfo"
)

// DefaultMonitorInterval is the sampling cadence when none is configured.
const DefaultMonitorInterval = 5 * time.Second

// SystemMonitor observes whole-run CPU, memory and disk utilization at a
// fixed interval. Exactly one instance runs per test, outside the
// per-category pool shares.
type SystemMonitor struct {
	Sampler  sysinfo.Sampler
	Interval time.Duration
	DiskPath string
}

func (w *SystemMonitor) Category() model.Category {
	return model.CategorySystemMonitor
}

func (w *SystemMonitor) Run(ctx context.Context, unit model.WorkUnit) model.WorkResult {
	started := time.Now()
	var m model.MonitorMetrics

	interval := w.Interval
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	diskPath := w.DiskPath
	if diskPath == "" {
		diskPath = "/"
	}

	for running(ctx, unit.Deadline) {
		cpuPct, cpuErr := w.Sampler.CPUPercent(ctx)
		memPct, memErr := w.Sampler.MemoryPercent(ctx)
		diskPct, diskErr := w.Sampler.DiskPercent(ctx, diskPath)

		if cpuErr != nil || memErr != nil || diskErr != nil {
			m.Errors++
		} else {
			m.Samples = append(m.Samples, model.MonitorSample{
				At:            time.Now(),
				CPUPercent:    cpuPct,
				MemoryPercent: memPct,
				DiskPercent:   diskPct,
			})
		}

		time.Sleep(interval)
	}

	return finish(unit, started, m, "")
}
