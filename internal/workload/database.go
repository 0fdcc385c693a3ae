package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
	"github.com/calebmor/gauntlet/internal/store"
)

const dbThrottle = time.Millisecond

// DatabaseLoad cycles INSERT, SELECT, UPDATE and DELETE operations against
// a SQLite file. Every worker opens its own store handle; the file is the
// only shared resource.
type DatabaseLoad struct {
	DBPath string

	// OpenStore overrides store construction in tests. Nil means SQLite.
	OpenStore func(path string) (store.Store, error)
}

func (d *DatabaseLoad) Category() model.Category {
	return model.CategoryDatabaseLoad
}

func (d *DatabaseLoad) Run(ctx context.Context, unit model.WorkUnit) model.WorkResult {
	started := time.Now()
	var m model.DatabaseMetrics

	open := d.OpenStore
	if open == nil {
		open = func(path string) (store.Store, error) { return store.NewSQLiteStore(path) }
	}

	s, err := open(d.DBPath)
	if err != nil {
		return finish(unit, started, m, fmt.Sprintf("open store: %v", err))
	}
	defer s.Close()

	hist := newLatencyHistogram()

	for running(ctx, unit.Deadline) {
		opStart := time.Now()

		var opErr error
		switch m.Operations % 4 {
		case 0:
			opErr = s.InsertRecord(ctx,
				fmt.Sprintf("load_%d_%d", unit.WorkerIndex, m.Operations),
				float64(time.Now().UnixMicro())/1e6)
		case 1:
			_, opErr = s.CountRecords(ctx)
		case 2:
			opErr = s.UpdateRecord(ctx, int(m.Operations%100)+1,
				fmt.Sprintf("updated_%d", unit.WorkerIndex))
		case 3:
			opErr = s.DeleteRecord(ctx, int(m.Operations%100)+1)
		}

		if opErr != nil {
			m.Errors++
			time.Sleep(dbThrottle)
			continue
		}

		hist.RecordValue(time.Since(opStart).Microseconds())
		m.Operations++

		time.Sleep(dbThrottle)
	}

	m.AvgLatencyMS = hist.Mean() / 1000
	return finish(unit, started, m, "")
}
