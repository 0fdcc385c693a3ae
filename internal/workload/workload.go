// Package workload defines the stress workload contract and its five
// concrete variants. A workload runs a tight loop of category-specific
// operations until its unit's deadline, accumulating metrics in state
// local to the Run call; instances therefore serve any number of
// concurrent workers.
package workload

import (
	"context"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/calebmor/gauntlet/internal/model"
	"github.com/calebmor/gauntlet/internal/sysinfo"
)

// Workload runs repeated category-specific operations until the unit's
// deadline. The loop exits strictly when now >= deadline, checked before
// each iteration; partial operations are never counted. Transient
// operation failures increment an error counter and the loop continues.
// Unrecoverable setup failures return immediately with zeroed metrics and
// the error recorded on the result.
type Workload interface {
	Category() model.Category
	Run(ctx context.Context, unit model.WorkUnit) model.WorkResult
}

// Defaults builds the standard workload set: the four schedulable stress
// variants plus the system monitor.
func Defaults(dbPath string, sampler sysinfo.Sampler, monitorInterval time.Duration) map[model.Category]Workload {
	return map[model.Category]Workload{
		model.CategoryDatabaseLoad:            &DatabaseLoad{DBPath: dbPath},
		model.CategoryMemoryStress:            &MemoryStress{Sampler: sampler},
		model.CategoryUIResponsiveness:        &UIResponsiveness{},
		model.CategoryCommunicationThroughput: &CommunicationThroughput{},
		model.CategorySystemMonitor:           &SystemMonitor{Sampler: sampler, Interval: monitorInterval},
	}
}

// newLatencyHistogram covers 1us to 10min at 3 significant figures, which
// is plenty for single-operation latencies here.
func newLatencyHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(1, int64(10*time.Minute/time.Microsecond), 3)
}

// running reports whether the loop may start another iteration.
func running(ctx context.Context, deadline time.Time) bool {
	return ctx.Err() == nil && time.Now().Before(deadline)
}

func finish(unit model.WorkUnit, started time.Time, m model.Metrics, errMsg string) model.WorkResult {
	return model.WorkResult{
		Category:    unit.Category,
		WorkerIndex: unit.WorkerIndex,
		StartedAt:   started,
		EndedAt:     time.Now(),
		Err:         errMsg,
		Metrics:     m,
	}
}
