package workload

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
)

// frameInterval approximates a 60 Hz render loop.
const frameInterval = 16 * time.Millisecond

// busySink defeats dead-code elimination of the busy loop. Stores are
// atomic because many UI workers run concurrently.
var busySink atomic.Int64

// UIResponsiveness performs a fixed slice of CPU-bound work per iteration
// and then sleeps one frame interval, approximating a render loop under
// load.
type UIResponsiveness struct{}

func (w *UIResponsiveness) Category() model.Category {
	return model.CategoryUIResponsiveness
}

func (w *UIResponsiveness) Run(ctx context.Context, unit model.WorkUnit) model.WorkResult {
	started := time.Now()
	var m model.UIMetrics

	hist := newLatencyHistogram()

	for running(ctx, unit.Deadline) {
		frameStart := time.Now()

		total := 0
		for i := 0; i < 1000; i++ {
			sum := 0
			for j := 0; j < 100; j++ {
				sum += j
			}
			total += sum
		}
		busySink.Store(int64(total))

		hist.RecordValue(time.Since(frameStart).Microseconds())
		m.Operations++

		time.Sleep(frameInterval)
	}

	m.AvgComputeMS = hist.Mean() / 1000
	return finish(unit, started, m, "")
}
