package orchestrator_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
	"github.com/calebmor/gauntlet/internal/orchestrator"
	"github.com/calebmor/gauntlet/internal/workload"
)

type fixedSampler struct{}

func (fixedSampler) CPUPercent(context.Context) (float64, error)          { return 25, nil }
func (fixedSampler) MemoryPercent(context.Context) (float64, error)       { return 50, nil }
func (fixedSampler) DiskPercent(context.Context, string) (float64, error) { return 75, nil }
func (fixedSampler) ProcessResidentMB(context.Context) (float64, error)   { return 128, nil }

// End-to-end run over the real workload implementations: four database
// workers against a shared SQLite file plus the system monitor.
func TestRealWorkloadsEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1s wall-clock run in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "load.db")
	set := workload.Defaults(dbPath, fixedSampler{}, 200*time.Millisecond)

	cfg := model.Config{
		Enabled:              true,
		DurationSeconds:      1,
		ConcurrentOperations: 4,
		GraceSeconds:         10,
		Scenarios:            map[model.Category]bool{model.CategoryDatabaseLoad: true},
	}

	o := orchestrator.New(cfg, set, testLogger())
	report, err := o.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if report.Incomplete != 0 {
		t.Errorf("Incomplete = %d, want 0", report.Incomplete)
	}

	db := report.PerCategory[model.CategoryDatabaseLoad]
	if db.Workers != 4 {
		t.Errorf("database Workers = %d, want 4", db.Workers)
	}
	if db.Operations == 0 {
		t.Error("database Operations = 0, want > 0")
	}
	if db.OpsPerSecond <= 0 {
		t.Error("database OpsPerSecond = 0, want > 0")
	}

	mon := report.PerCategory[model.CategorySystemMonitor]
	if mon.Workers != 1 {
		t.Errorf("monitor Workers = %d, want 1", mon.Workers)
	}
	if mon.Samples < 1 {
		t.Errorf("monitor Samples = %d, want >= 1", mon.Samples)
	}
	if mon.CPUAvg != 25 {
		t.Errorf("monitor CPUAvg = %f, want 25", mon.CPUAvg)
	}

	if report.OverallDurationSeconds < 1 {
		t.Errorf("OverallDurationSeconds = %f, want >= 1", report.OverallDurationSeconds)
	}
}
