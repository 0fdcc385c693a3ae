package model

import "time"

// WorkUnit is one scheduled instance of a workload. It is created by the
// orchestrator, handed to exactly one pool task, and never shared.
type WorkUnit struct {
	Category    Category
	WorkerIndex int
	Deadline    time.Time
}

// Metrics is the category-specific payload of a WorkResult. The concrete
// types below form a closed set; the aggregator switches over them
// exhaustively.
type Metrics interface {
	metrics()
}

// DatabaseMetrics accumulates the result of one database load worker.
type DatabaseMetrics struct {
	Operations   int64
	Errors       int64
	AvgLatencyMS float64
}

// MemoryMetrics accumulates the result of one memory stress worker.
type MemoryMetrics struct {
	Allocations  int64
	Errors       int64
	PeakMemoryMB float64
}

// UIMetrics accumulates the result of one UI responsiveness worker.
type UIMetrics struct {
	Operations   int64
	AvgComputeMS float64
}

// CommMetrics accumulates the result of one communication throughput worker.
type CommMetrics struct {
	Messages     int64
	Bytes        int64
	AvgLatencyMS float64
}

// MonitorSample is one point in the system monitor's time series.
type MonitorSample struct {
	At            time.Time `json:"at"`
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float64   `json:"memory_percent"`
	DiskPercent   float64   `json:"disk_percent"`
}

// MonitorMetrics carries the system monitor's sample series.
type MonitorMetrics struct {
	Samples []MonitorSample
	Errors  int64
}

func (DatabaseMetrics) metrics() {}
func (MemoryMetrics) metrics()   {}
func (UIMetrics) metrics()       {}
func (CommMetrics) metrics()     {}
func (MonitorMetrics) metrics()  {}

// WorkResult is produced exactly once per WorkUnit. A worker builds it
// privately and publishes it a single time on completion; failures degrade
// to zeroed metrics with Err set rather than being dropped.
type WorkResult struct {
	Category    Category
	WorkerIndex int
	StartedAt   time.Time
	EndedAt     time.Time
	Err         string
	Metrics     Metrics
}

// Failed reports whether the worker recorded an unrecoverable error.
func (r WorkResult) Failed() bool {
	return r.Err != ""
}
