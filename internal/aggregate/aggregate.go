// Package aggregate reduces collected work results into the final report.
// Aggregation is a pure function of its input: reductions are sums, maxima
// and means, so result arrival order never affects the output.
package aggregate

import (
	"time"

	"github.com/calebmor/gauntlet/internal/model"
)

// Aggregate groups results by category and reduces each group into its
// summary. Every category appears in the report; a category with no
// contributing results gets a zero-valued summary.
func Aggregate(runID string, results []model.WorkResult, started, ended time.Time, durationSeconds int) *model.AggregateReport {
	byCategory := make(map[model.Category][]model.WorkResult, len(model.AllCategories))
	for _, r := range results {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	secs := float64(durationSeconds)
	if secs <= 0 {
		secs = 1
	}

	per := make(map[model.Category]model.CategorySummary, len(model.AllCategories))
	for _, cat := range model.AllCategories {
		group := byCategory[cat]

		var sum model.CategorySummary
		switch cat {
		case model.CategoryDatabaseLoad:
			sum = reduceDatabase(group, secs)
		case model.CategoryMemoryStress:
			sum = reduceMemory(group, secs)
		case model.CategoryUIResponsiveness:
			sum = reduceUI(group, secs)
		case model.CategoryCommunicationThroughput:
			sum = reduceComm(group, secs)
		case model.CategorySystemMonitor:
			sum = reduceMonitor(group)
		}
		sum.Workers = len(group)
		per[cat] = sum
	}

	return &model.AggregateReport{
		RunID:                  runID,
		PerCategory:            per,
		OverallDurationSeconds: ended.Sub(started).Seconds(),
		StartedAt:              started,
		EndedAt:                ended,
	}
}

func reduceDatabase(group []model.WorkResult, secs float64) model.CategorySummary {
	var s model.CategorySummary
	var latencySum float64
	for _, r := range group {
		m, ok := r.Metrics.(model.DatabaseMetrics)
		if !ok {
			continue
		}
		s.Operations += m.Operations
		s.Errors += m.Errors
		latencySum += m.AvgLatencyMS
	}
	if n := len(group); n > 0 {
		// Mean of per-worker means, not a globally weighted mean. Kept
		// as-is from the original reporting.
		s.AvgLatencyMS = latencySum / float64(n)
	}
	// Errors over completed operations (floored at one), matching how the
	// host always reported this rate.
	s.ErrorRate = float64(s.Errors) / float64(max(s.Operations, 1)) * 100
	s.OpsPerSecond = float64(s.Operations) / secs
	return s
}

func reduceMemory(group []model.WorkResult, secs float64) model.CategorySummary {
	var s model.CategorySummary
	for _, r := range group {
		m, ok := r.Metrics.(model.MemoryMetrics)
		if !ok {
			continue
		}
		s.Operations += m.Allocations
		s.Errors += m.Errors
		if m.PeakMemoryMB > s.PeakMemoryMB {
			s.PeakMemoryMB = m.PeakMemoryMB
		}
	}
	s.OpsPerSecond = float64(s.Operations) / secs
	return s
}

func reduceUI(group []model.WorkResult, secs float64) model.CategorySummary {
	var s model.CategorySummary
	var computeSum float64
	for _, r := range group {
		m, ok := r.Metrics.(model.UIMetrics)
		if !ok {
			continue
		}
		s.Operations += m.Operations
		computeSum += m.AvgComputeMS
	}
	if n := len(group); n > 0 {
		s.AvgLatencyMS = computeSum / float64(n)
	}
	s.OpsPerSecond = float64(s.Operations) / secs
	return s
}

func reduceComm(group []model.WorkResult, secs float64) model.CategorySummary {
	var s model.CategorySummary
	var latencySum float64
	for _, r := range group {
		m, ok := r.Metrics.(model.CommMetrics)
		if !ok {
			continue
		}
		s.Operations += m.Messages
		s.Bytes += float64(m.Bytes)
		latencySum += m.AvgLatencyMS
	}
	if n := len(group); n > 0 {
		s.AvgLatencyMS = latencySum / float64(n)
	}
	s.OpsPerSecond = float64(s.Operations) / secs
	s.ThroughputMBPerSec = s.Bytes / 1024 / 1024 / secs
	return s
}

func reduceMonitor(group []model.WorkResult) model.CategorySummary {
	var s model.CategorySummary
	var cpuSum, memSum, diskSum float64
	for _, r := range group {
		m, ok := r.Metrics.(model.MonitorMetrics)
		if !ok {
			continue
		}
		s.Errors += m.Errors
		for _, sample := range m.Samples {
			s.Samples++
			cpuSum += sample.CPUPercent
			memSum += sample.MemoryPercent
			diskSum += sample.DiskPercent
			if sample.CPUPercent > s.CPUMax {
				s.CPUMax = sample.CPUPercent
			}
			if sample.MemoryPercent > s.MemMax {
				s.MemMax = sample.MemoryPercent
			}
			if sample.DiskPercent > s.DiskMax {
				s.DiskMax = sample.DiskPercent
			}
		}
	}
	if s.Samples > 0 {
		s.CPUAvg = cpuSum / float64(s.Samples)
		s.MemAvg = memSum / float64(s.Samples)
		s.DiskAvg = diskSum / float64(s.Samples)
	}
	return s
}
