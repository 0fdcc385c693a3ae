// Package report renders an aggregate report for the console and persists
// the detailed JSON record. The orchestrator produces the report; this
// package only formats it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// Render writes the human-readable report to w.
func Render(w io.Writer, r *model.AggregateReport) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "STRESS TEST REPORT  %s\n", r.RunID)
	fmt.Fprintln(w, line)

	if r.NoOp {
		fmt.Fprintln(w, "Stress test is disabled in configuration; nothing was run.")
		return
	}

	fmt.Fprintf(w, "Test Duration: %.2f seconds\n", r.OverallDurationSeconds)
	fmt.Fprintf(w, "Start Time: %s\n", r.StartedAt.Format(timeLayout))
	fmt.Fprintf(w, "End Time: %s\n", r.EndedAt.Format(timeLayout))
	if r.Incomplete > 0 {
		fmt.Fprintf(w, "Incomplete Workers: %d (missed the collection window)\n", r.Incomplete)
	}
	fmt.Fprintln(w)

	for _, cat := range model.AllCategories {
		sum := r.PerCategory[cat]
		fmt.Fprintf(w, "--- %s RESULTS ---\n", strings.ToUpper(string(cat)))
		if sum.Workers == 0 {
			fmt.Fprintln(w, "No results.")
			fmt.Fprintln(w)
			continue
		}
		renderCategory(w, cat, sum)
		fmt.Fprintln(w)
	}
}

func renderCategory(w io.Writer, cat model.Category, s model.CategorySummary) {
	switch cat {
	case model.CategoryDatabaseLoad:
		fmt.Fprintf(w, "Total Operations: %d\n", s.Operations)
		fmt.Fprintf(w, "Total Errors: %d\n", s.Errors)
		fmt.Fprintf(w, "Error Rate: %.2f%%\n", s.ErrorRate)
		fmt.Fprintf(w, "Average Response Time: %.2fms\n", s.AvgLatencyMS)
		fmt.Fprintf(w, "Operations per Second: %.2f\n", s.OpsPerSecond)
	case model.CategoryMemoryStress:
		fmt.Fprintf(w, "Total Memory Allocations: %d\n", s.Operations)
		fmt.Fprintf(w, "Peak Memory Usage: %.2f MB\n", s.PeakMemoryMB)
		fmt.Fprintf(w, "Allocations per Second: %.2f\n", s.OpsPerSecond)
	case model.CategoryUIResponsiveness:
		fmt.Fprintf(w, "Total UI Operations: %d\n", s.Operations)
		fmt.Fprintf(w, "Average Response Time: %.2fms\n", s.AvgLatencyMS)
		fmt.Fprintf(w, "Operations per Second: %.2f\n", s.OpsPerSecond)
		fmt.Fprintf(w, "Effective FPS: %.2f\n", s.OpsPerSecond)
	case model.CategoryCommunicationThroughput:
		fmt.Fprintf(w, "Total Messages: %d\n", s.Operations)
		fmt.Fprintf(w, "Total Bytes Transferred: %.2f MB\n", s.Bytes/1024/1024)
		fmt.Fprintf(w, "Average Latency: %.2fms\n", s.AvgLatencyMS)
		fmt.Fprintf(w, "Messages per Second: %.2f\n", s.OpsPerSecond)
		fmt.Fprintf(w, "Throughput: %.2f MB/s\n", s.ThroughputMBPerSec)
	case model.CategorySystemMonitor:
		fmt.Fprintf(w, "Average CPU Usage: %.2f%%\n", s.CPUAvg)
		fmt.Fprintf(w, "Peak CPU Usage: %.2f%%\n", s.CPUMax)
		fmt.Fprintf(w, "Average Memory Usage: %.2f%%\n", s.MemAvg)
		fmt.Fprintf(w, "Peak Memory Usage: %.2f%%\n", s.MemMax)
		fmt.Fprintf(w, "Average Disk Usage: %.2f%%\n", s.DiskAvg)
		fmt.Fprintf(w, "Peak Disk Usage: %.2f%%\n", s.DiskMax)
		fmt.Fprintf(w, "Samples: %d\n", s.Samples)
	}
}

// detailedReport is the on-disk JSON shape.
type detailedReport struct {
	Config struct {
		DurationSeconds      int                     `json:"duration_seconds"`
		ConcurrentOperations int                     `json:"concurrent_operations"`
		Scenarios            map[model.Category]bool `json:"test_scenarios"`
	} `json:"test_config"`
	Report *model.AggregateReport `json:"report"`
}

// WriteJSON persists the detailed report into dir as a timestamped JSON
// file and returns its path.
func WriteJSON(dir string, cfg model.Config, r *model.AggregateReport) (string, error) {
	d := detailedReport{Report: r}
	d.Config.DurationSeconds = cfg.DurationSeconds
	d.Config.ConcurrentOperations = cfg.ConcurrentOperations
	d.Config.Scenarios = cfg.Scenarios

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	name := fmt.Sprintf("stress_report_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
