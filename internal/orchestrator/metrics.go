package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/calebmor/gauntlet/internal/model"
)

var (
	unitsLaunchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gauntlet_units_launched_total",
			Help: "Total number of work units submitted to the pool.",
		},
		[]string{"category"},
	)

	unitsTimedOutTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gauntlet_units_timed_out_total",
			Help: "Work units that missed the collection window.",
		},
	)

	activeWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gauntlet_active_workers",
			Help: "Number of currently executing workload tasks.",
		},
	)

	runDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gauntlet_run_duration_seconds",
			Help:    "Wall-clock duration of complete stress runs, in seconds.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

func init() {
	prometheus.MustRegister(unitsLaunchedTotal)
	prometheus.MustRegister(unitsTimedOutTotal)
	prometheus.MustRegister(activeWorkers)
	prometheus.MustRegister(runDuration)

	// Pre-initialize category labels so every series is visible at 0 from
	// startup rather than after the first submission.
	for _, cat := range model.AllCategories {
		unitsLaunchedTotal.WithLabelValues(string(cat))
	}
}
