package model

import "fmt"

// Category identifies one of the fixed workload kinds.
type Category string

const (
	CategoryDatabaseLoad            Category = "database_load"
	CategoryMemoryStress            Category = "memory_stress"
	CategoryUIResponsiveness        Category = "ui_responsiveness"
	CategoryCommunicationThroughput Category = "communication_throughput"
	CategorySystemMonitor           Category = "system_monitor"
)

// AllCategories is the closed set of categories, monitor included.
var AllCategories = []Category{
	CategoryDatabaseLoad,
	CategoryMemoryStress,
	CategoryUIResponsiveness,
	CategoryCommunicationThroughput,
	CategorySystemMonitor,
}

// WorkloadCategories are the schedulable stress categories. The system
// monitor is excluded: it always runs as a single instance outside the
// per-category pool share.
var WorkloadCategories = []Category{
	CategoryDatabaseLoad,
	CategoryMemoryStress,
	CategoryUIResponsiveness,
	CategoryCommunicationThroughput,
}

// ParseCategory converts a scenario name from configuration into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryDatabaseLoad, CategoryMemoryStress, CategoryUIResponsiveness,
		CategoryCommunicationThroughput, CategorySystemMonitor:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}
