package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// recompute runs labelled by outcome (ok, read_failure, cancelled)
	RecomputeRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adspend_recompute_runs_total",
			Help: "Total spend recompute runs",
		},
		[]string{"outcome"},
	)

	// wall time of one recompute run
	RecomputeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adspend_recompute_duration_seconds",
			Help:    "Histogram of recompute run durations",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ads handled per run labelled by status (succeeded, invalid_input, persistence_failure, skipped)
	AdsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adspend_ads_processed_total",
			Help: "Total ads processed by recompute runs",
		},
		[]string{"status"},
	)

	// configuration values replaced by safe fallbacks
	ConfigWarnings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adspend_config_warnings_total",
			Help: "Total configuration values replaced by fallbacks",
		},
		[]string{"parameter"},
	)

	// distribution of competitive multipliers
	Multiplier = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adspend_multiplier",
			Help:    "Histogram of competitive price multipliers",
			Buckets: prometheus.LinearBuckets(1, 0.1, 21),
		},
	)

	// spend of the whole catalog after the last run
	CatalogSpend = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "adspend_catalog_spend",
			Help: "Sum of recomputed spend over all succeeded ads",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RecomputeRuns,
		RecomputeDuration,
		AdsProcessed,
		ConfigWarnings,
		Multiplier,
		CatalogSpend,
	)
}
