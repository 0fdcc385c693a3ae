package model

import "time"

// CategorySummary is the reduction of all WorkResults sharing a category.
// Only the fields relevant to the category are populated; the zero value
// is the documented empty summary for a category with no contributing
// results.
type CategorySummary struct {
	Workers    int     `json:"workers"`
	Operations int64   `json:"operations,omitempty"`
	Errors     int64   `json:"errors,omitempty"`
	ErrorRate  float64 `json:"error_rate,omitempty"`

	// AvgLatencyMS is the mean of per-worker mean latencies, not a
	// globally weighted mean. Kept as-is from the original reporting.
	AvgLatencyMS float64 `json:"avg_latency_ms,omitempty"`
	OpsPerSecond float64 `json:"ops_per_second,omitempty"`

	Bytes              float64 `json:"bytes,omitempty"`
	ThroughputMBPerSec float64 `json:"throughput_mb_per_sec,omitempty"`
	PeakMemoryMB       float64 `json:"peak_memory_mb,omitempty"`

	CPUAvg  float64 `json:"cpu_avg,omitempty"`
	CPUMax  float64 `json:"cpu_max,omitempty"`
	MemAvg  float64 `json:"mem_avg,omitempty"`
	MemMax  float64 `json:"mem_max,omitempty"`
	DiskAvg float64 `json:"disk_avg,omitempty"`
	DiskMax float64 `json:"disk_max,omitempty"`
	Samples int     `json:"samples,omitempty"`
}

// AggregateReport is the final reduction of a run. Built once after
// collection finishes and read-only from then on.
type AggregateReport struct {
	RunID                  string                       `json:"run_id"`
	PerCategory            map[Category]CategorySummary `json:"per_category"`
	OverallDurationSeconds float64                      `json:"overall_duration_seconds"`
	StartedAt              time.Time                    `json:"started_at"`
	EndedAt                time.Time                    `json:"ended_at"`

	// Incomplete counts WorkUnits that did not return a result before the
	// collection timeout.
	Incomplete int `json:"incomplete"`

	// NoOp marks a run that was disabled by configuration.
	NoOp bool `json:"no_op,omitempty"`
}
