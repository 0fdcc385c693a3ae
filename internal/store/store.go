// Package store provides the persistent record store exercised by the
// database load workload. Each worker opens its own store handle; handles
// are never shared across workers.
package store

import "context"

// Store is the insert/select/update/delete contract the database load
// workload drives.
type Store interface {
	InsertRecord(ctx context.Context, data string, ts float64) error
	CountRecords(ctx context.Context) (int, error)
	UpdateRecord(ctx context.Context, id int, data string) error
	DeleteRecord(ctx context.Context, id int) error
	Close() error
}
