package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.InsertRecord(ctx, "payload", float64(time.Now().UnixNano())); err != nil {
			t.Fatalf("InsertRecord[%d]: %v", i, err)
		}
	}

	n, err := s.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if n != 3 {
		t.Errorf("CountRecords = %d, want 3", n)
	}
}

func TestUpdateAndDeleteTolerateMissingIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpdateRecord(ctx, 42, "updated"); err != nil {
		t.Errorf("UpdateRecord on missing id: %v", err)
	}
	if err := s.DeleteRecord(ctx, 42); err != nil {
		t.Errorf("DeleteRecord on missing id: %v", err)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.InsertRecord(ctx, "payload", 1); err != nil {
		t.Fatalf("InsertRecord: %v", err)
	}
	if err := s.DeleteRecord(ctx, 1); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}

	n, err := s.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if n != 0 {
		t.Errorf("CountRecords = %d, want 0", n)
	}
}

// Workers never share handles; each one opens its own connection to the
// same file. WAL mode must let independent handles interleave writes.
func TestConcurrentHandlesOnSameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "load.db")
	ctx := context.Background()

	a, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore(a): %v", err)
	}
	defer a.Close()

	b, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore(b): %v", err)
	}
	defer b.Close()

	if err := a.InsertRecord(ctx, "from-a", 1); err != nil {
		t.Fatalf("InsertRecord via a: %v", err)
	}
	if err := b.InsertRecord(ctx, "from-b", 2); err != nil {
		t.Fatalf("InsertRecord via b: %v", err)
	}

	n, err := b.CountRecords(ctx)
	if err != nil {
		t.Fatalf("CountRecords via b: %v", err)
	}
	if n != 2 {
		t.Errorf("CountRecords = %d, want 2", n)
	}
}
