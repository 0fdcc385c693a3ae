package workload

import (
	"context"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
	"github.com/calebmor/gauntlet/internal/sysinfo"
)

const (
	memBlockSize = 1 << 20 // 1 MiB per allocation
	memWindowMax = 100     // blocks retained before trimming
	memWindowMin = 50      // blocks kept after a trim
	memThrottle  = 10 * time.Millisecond
)

// MemoryStress allocates fixed-size blocks while holding a bounded sliding
// window of recent ones, creating sustained rather than unbounded memory
// pressure. Process resident memory is sampled every iteration and the
// peak retained.
type MemoryStress struct {
	Sampler sysinfo.Sampler
}

func (w *MemoryStress) Category() model.Category {
	return model.CategoryMemoryStress
}

func (w *MemoryStress) Run(ctx context.Context, unit model.WorkUnit) model.WorkResult {
	started := time.Now()
	var m model.MemoryMetrics

	blocks := make([][]byte, 0, memWindowMax+1)

	for running(ctx, unit.Deadline) {
		block := make([]byte, memBlockSize)
		// Touch each page so the allocation actually becomes resident.
		for i := 0; i < len(block); i += 4096 {
			block[i] = 1
		}
		blocks = append(blocks, block)
		m.Allocations++

		rss, err := w.Sampler.ProcessResidentMB(ctx)
		if err != nil {
			m.Errors++
		} else if rss > m.PeakMemoryMB {
			m.PeakMemoryMB = rss
		}

		if len(blocks) > memWindowMax {
			// Copy into a fresh slice so the dropped blocks are actually
			// released rather than pinned by the old backing array.
			kept := make([][]byte, memWindowMin, memWindowMax+1)
			copy(kept, blocks[len(blocks)-memWindowMin:])
			blocks = kept
		}

		time.Sleep(memThrottle)
	}

	return finish(unit, started, m, "")
}
