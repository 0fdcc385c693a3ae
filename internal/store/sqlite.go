package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createLoadRecordsTable = `
CREATE TABLE IF NOT EXISTS load_records (
    id   INTEGER PRIMARY KEY,
    data TEXT,
    ts   REAL
)`

// Compile-time interface satisfaction check.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the SQLite database at dbPath and creates the
// load_records table. WAL mode plus a busy timeout let many workers hammer
// the same file through independent connections.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := db.Exec(createLoadRecordsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create load_records table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InsertRecord inserts a new load record.
func (s *SQLiteStore) InsertRecord(ctx context.Context, data string, ts float64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO load_records (data, ts) VALUES (?, ?)", data, ts)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// CountRecords returns the number of load records.
func (s *SQLiteStore) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM load_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// UpdateRecord rewrites the data column of the record with the given id.
// Updating a missing id is not an error; the workload cycles through a
// small id range and tolerates gaps left by deletes.
func (s *SQLiteStore) UpdateRecord(ctx context.Context, id int, data string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE load_records SET data = ? WHERE id = ?", data, id)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record with the given id, if present.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM load_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
