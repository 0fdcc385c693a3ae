package pool

import (
	"context"
	"testing"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
)

func sleepTask(d time.Duration) RunFunc {
	return func(_ context.Context, unit model.WorkUnit) model.WorkResult {
		time.Sleep(d)
		return model.WorkResult{
			Category:    unit.Category,
			WorkerIndex: unit.WorkerIndex,
			Metrics:     model.UIMetrics{Operations: 1},
		}
	}
}

func TestAwaitAllCollectsEveryResult(t *testing.T) {
	p := New(4)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		unit := model.WorkUnit{Category: model.CategoryUIResponsiveness, WorkerIndex: i}
		if _, err := p.Submit(ctx, unit, sleepTask(10*time.Millisecond)); err != nil {
			t.Fatalf("Submit[%d]: %v", i, err)
		}
	}

	results, timedOut := p.AwaitAll(2 * time.Second)
	if len(results) != 4 {
		t.Errorf("results = %d, want 4", len(results))
	}
	if len(timedOut) != 0 {
		t.Errorf("timedOut = %d, want 0", len(timedOut))
	}

	seen := make(map[int]bool)
	for _, r := range results {
		seen[r.WorkerIndex] = true
	}
	for i := 0; i < 4; i++ {
		if !seen[i] {
			t.Errorf("missing result for worker %d", i)
		}
	}
}

func TestSubmitBeyondCapacityFails(t *testing.T) {
	p := New(1)
	ctx := context.Background()
	unit := model.WorkUnit{Category: model.CategoryUIResponsiveness}

	if _, err := p.Submit(ctx, unit, sleepTask(100*time.Millisecond)); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if _, err := p.Submit(ctx, unit, sleepTask(time.Millisecond)); err == nil {
		t.Error("second Submit succeeded, want pool exhausted error")
	}

	p.AwaitAll(2 * time.Second)
}

func TestAwaitAllReturnsPromptlyOnTimeout(t *testing.T) {
	p := New(2)
	ctx := context.Background()

	fast := model.WorkUnit{Category: model.CategoryUIResponsiveness, WorkerIndex: 0}
	slow := model.WorkUnit{Category: model.CategoryUIResponsiveness, WorkerIndex: 1}

	if _, err := p.Submit(ctx, fast, sleepTask(10*time.Millisecond)); err != nil {
		t.Fatalf("Submit(fast): %v", err)
	}
	if _, err := p.Submit(ctx, slow, sleepTask(5*time.Second)); err != nil {
		t.Fatalf("Submit(slow): %v", err)
	}

	start := time.Now()
	results, timedOut := p.AwaitAll(100 * time.Millisecond)
	elapsed := time.Since(start)

	if elapsed > time.Second {
		t.Errorf("AwaitAll took %v, want ~100ms", elapsed)
	}
	if len(results) != 1 {
		t.Errorf("results = %d, want 1 (the fast task)", len(results))
	}
	if len(timedOut) != 1 {
		t.Fatalf("timedOut = %d, want 1", len(timedOut))
	}
	if timedOut[0].Unit().WorkerIndex != 1 {
		t.Errorf("timed-out worker = %d, want 1", timedOut[0].Unit().WorkerIndex)
	}
	if _, ok := timedOut[0].Result(); ok {
		t.Error("timed-out handle reported a result before completing")
	}
}

func TestHandleResultAfterCompletion(t *testing.T) {
	p := New(1)
	unit := model.WorkUnit{Category: model.CategoryUIResponsiveness, WorkerIndex: 7}

	h, err := p.Submit(context.Background(), unit, sleepTask(time.Millisecond))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	p.AwaitAll(2 * time.Second)

	r, ok := h.Result()
	if !ok {
		t.Fatal("Result() not ready after AwaitAll")
	}
	if r.WorkerIndex != 7 {
		t.Errorf("WorkerIndex = %d, want 7", r.WorkerIndex)
	}
}
