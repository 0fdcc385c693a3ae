// Package pool provides the bounded-concurrency executor that runs work
// units in parallel and collects their results. Each submitted unit maps to
// one goroutine; the pool is sized so that submissions never queue.
package pool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/calebmor/gauntlet/internal/model"
)

// RunFunc executes one work unit to completion and returns its result.
type RunFunc func(ctx context.Context, unit model.WorkUnit) model.WorkResult

// Handle tracks one submitted work unit. The result is written exactly once
// by the task goroutine before done is closed; readers must only touch it
// after done.
type Handle struct {
	unit   model.WorkUnit
	done   chan struct{}
	result model.WorkResult
}

// Unit returns the work unit this handle was created for.
func (h *Handle) Unit() model.WorkUnit {
	return h.unit
}

// Result returns the task's result if it has completed. A handle abandoned
// at collection timeout may still complete later; its result is simply
// never read again.
func (h *Handle) Result() (model.WorkResult, bool) {
	select {
	case <-h.done:
		return h.result, true
	default:
		return model.WorkResult{}, false
	}
}

// Pool is a fixed-capacity parallel executor.
type Pool struct {
	sem *semaphore.Weighted

	mu      sync.Mutex
	handles []*Handle
}

// New creates a pool that runs at most size tasks concurrently.
func New(size int64) *Pool {
	return &Pool{sem: semaphore.NewWeighted(size)}
}

// Submit launches a task for the unit. The caller is expected to size the
// pool to cover every unit it will submit; an exhausted pool is therefore
// a hard error, not a reason to queue.
func (p *Pool) Submit(ctx context.Context, unit model.WorkUnit, run RunFunc) (*Handle, error) {
	if !p.sem.TryAcquire(1) {
		return nil, fmt.Errorf("pool exhausted submitting %s worker %d", unit.Category, unit.WorkerIndex)
	}

	h := &Handle{unit: unit, done: make(chan struct{})}

	p.mu.Lock()
	p.handles = append(p.handles, h)
	p.mu.Unlock()

	go func() {
		defer p.sem.Release(1)
		h.result = run(ctx, unit)
		close(h.done)
	}()

	return h, nil
}

// AwaitAll blocks until every submitted task completes or timeout elapses.
// Tasks still running at timeout are returned as timed out and excluded
// from the result set; they are not preempted.
func (p *Pool) AwaitAll(timeout time.Duration) ([]model.WorkResult, []*Handle) {
	p.mu.Lock()
	hs := make([]*Handle, len(p.handles))
	copy(hs, p.handles)
	p.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	var results []model.WorkResult
	var timedOut []*Handle

	expired := false
	for _, h := range hs {
		if !expired {
			select {
			case <-h.done:
				results = append(results, h.result)
				continue
			case <-timer.C:
				expired = true
			}
		}
		// Past the deadline: take only what already finished.
		select {
		case <-h.done:
			results = append(results, h.result)
		default:
			timedOut = append(timedOut, h)
		}
	}

	return results, timedOut
}
