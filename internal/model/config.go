package model

import "fmt"

// Default configuration values, matching the shipped performance profile.
const (
	DefaultDurationSeconds        = 300
	DefaultConcurrentOperations   = 50
	DefaultGraceSeconds           = 60
	DefaultMonitorIntervalSeconds = 5
	DefaultDBPath                 = "gauntlet.db"
	DefaultReportDir              = "."
)

// Config is the resolved stress-test configuration. It is built once by
// the config loader and passed by value; components never mutate it.
type Config struct {
	Enabled              bool
	DurationSeconds      int
	ConcurrentOperations int
	Scenarios            map[Category]bool

	GraceSeconds           int
	MonitorIntervalSeconds int

	DBPath    string
	ReportDir string
}

// Validate checks the invariants the orchestrator depends on.
func (c Config) Validate() error {
	if c.DurationSeconds <= 0 {
		return fmt.Errorf("duration_seconds must be positive, got %d", c.DurationSeconds)
	}
	if c.ConcurrentOperations <= 0 {
		return fmt.Errorf("concurrent_operations must be positive, got %d", c.ConcurrentOperations)
	}
	if n := len(c.EnabledCategories()); n > 0 && c.ConcurrentOperations < n {
		return fmt.Errorf("concurrent_operations (%d) must cover the %d enabled categories", c.ConcurrentOperations, n)
	}
	for cat := range c.Scenarios {
		if _, err := ParseCategory(string(cat)); err != nil {
			return err
		}
	}
	return nil
}

// EnabledCategories returns the schedulable categories switched on in the
// scenario map, in the fixed WorkloadCategories order. The system monitor
// is never part of the result.
func (c Config) EnabledCategories() []Category {
	var out []Category
	for _, cat := range WorkloadCategories {
		if c.Scenarios[cat] {
			out = append(out, cat)
		}
	}
	return out
}
