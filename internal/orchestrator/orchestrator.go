// Package orchestrator governs the stress run lifecycle: it splits the
// configured concurrency fairly across enabled categories, submits work
// units into the pool, awaits collection under the grace window, and hands
// the gathered results to the aggregator.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/calebmor/gauntlet/internal/aggregate"
	"github.com/calebmor/gauntlet/internal/model"
	"github.com/calebmor/gauntlet/internal/pool"
	"github.com/calebmor/gauntlet/internal/workload"
)

// State names the orchestrator lifecycle phases.
type State string

const (
	StateIdle       State = "idle"
	StateRunning    State = "running"
	StateCollecting State = "collecting"
	StateReported   State = "reported"
)

// Orchestrator runs one stress test at a time. It is idle between runs.
type Orchestrator struct {
	cfg       model.Config
	workloads map[model.Category]workload.Workload
	logger    *slog.Logger

	mu    sync.Mutex
	state State
}

// New creates an idle orchestrator over the given workload set.
func New(cfg model.Config, workloads map[model.Category]workload.Workload, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		workloads: workloads,
		logger:    logger,
		state:     StateIdle,
	}
}

// State returns the current lifecycle phase.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) transition(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	o.logger.Debug("orchestrator state", "state", string(s))
}

// Run executes one full stress test and returns its report. A disabled
// configuration short-circuits to a no-op report without any state
// transition. The only hard error is failing to start a pool task; worker
// failures and collection timeouts degrade the report instead.
func (o *Orchestrator) Run(ctx context.Context) (*model.AggregateReport, error) {
	runID := model.NewRunID()

	if !o.cfg.Enabled {
		o.logger.Info("stress test disabled in configuration", "run_id", runID)
		now := time.Now()
		report := aggregate.Aggregate(runID, nil, now, now, o.cfg.DurationSeconds)
		report.NoOp = true
		return report, nil
	}

	started := time.Now()
	deadline := started.Add(time.Duration(o.cfg.DurationSeconds) * time.Second)
	enabled := o.cfg.EnabledCategories()

	o.logger.Info("stress test starting",
		"run_id", runID,
		"duration_s", o.cfg.DurationSeconds,
		"concurrent_operations", o.cfg.ConcurrentOperations,
		"categories", len(enabled),
	)

	o.transition(StateRunning)
	defer o.transition(StateIdle)

	// One extra slot keeps the monitor outside the workload shares.
	p := pool.New(int64(o.cfg.ConcurrentOperations) + 1)

	share := 0
	if len(enabled) > 0 {
		// Integer fair split; remainder slots stay unallocated.
		share = o.cfg.ConcurrentOperations / len(enabled)
	}

	for _, cat := range enabled {
		w, ok := o.workloads[cat]
		if !ok {
			return nil, fmt.Errorf("no workload registered for category %s", cat)
		}
		for i := 0; i < share; i++ {
			unit := model.WorkUnit{Category: cat, WorkerIndex: i, Deadline: deadline}
			if _, err := p.Submit(ctx, unit, o.task(w)); err != nil {
				return nil, fmt.Errorf("submit %s worker %d: %w", cat, i, err)
			}
			unitsLaunchedTotal.WithLabelValues(string(cat)).Inc()
		}
	}

	// The monitor always runs, even with zero enabled categories.
	mon, ok := o.workloads[model.CategorySystemMonitor]
	if !ok {
		return nil, fmt.Errorf("no workload registered for category %s", model.CategorySystemMonitor)
	}
	monUnit := model.WorkUnit{Category: model.CategorySystemMonitor, Deadline: deadline}
	if _, err := p.Submit(ctx, monUnit, o.task(mon)); err != nil {
		return nil, fmt.Errorf("submit system monitor: %w", err)
	}
	unitsLaunchedTotal.WithLabelValues(string(model.CategorySystemMonitor)).Inc()

	o.transition(StateCollecting)

	grace := time.Duration(o.cfg.GraceSeconds) * time.Second
	results, timedOut := p.AwaitAll(time.Duration(o.cfg.DurationSeconds)*time.Second + grace)

	for _, h := range timedOut {
		unit := h.Unit()
		unitsTimedOutTotal.Inc()
		o.logger.Warn("worker missed collection window",
			"category", string(unit.Category),
			"worker", unit.WorkerIndex,
		)
	}

	o.transition(StateReported)

	ended := time.Now()
	report := aggregate.Aggregate(runID, results, started, ended, o.cfg.DurationSeconds)
	report.Incomplete = len(timedOut)
	runDuration.Observe(ended.Sub(started).Seconds())

	o.logger.Info("stress test finished",
		"run_id", runID,
		"results", len(results),
		"incomplete", len(timedOut),
		"elapsed_s", ended.Sub(started).Seconds(),
	)

	return report, nil
}

func (o *Orchestrator) task(w workload.Workload) pool.RunFunc {
	return func(ctx context.Context, unit model.WorkUnit) model.WorkResult {
		activeWorkers.Inc()
		defer activeWorkers.Dec()

		res := w.Run(ctx, unit)
		if res.Failed() {
			o.logger.Warn("worker failed",
				"category", string(unit.Category),
				"worker", unit.WorkerIndex,
				"error", res.Err,
			)
		}
		return res
	}
}
