package observability

import "time"

// MetricsRegistry decouples the engine from the global Prometheus
// collectors so tests can run without them.
type MetricsRegistry interface {
	IncrementRuns(outcome string)
	RecordRunDuration(duration time.Duration)
	AddAdsProcessed(status string, n int)
	IncrementConfigWarnings(parameter string)
	RecordMultiplier(multiplier float64)
	SetCatalogSpend(amount float64)
}

// PrometheusRegistry implements MetricsRegistry with the package collectors.
type PrometheusRegistry struct{}

func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

func (r *PrometheusRegistry) IncrementRuns(outcome string) {
	RecomputeRuns.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRegistry) RecordRunDuration(duration time.Duration) {
	RecomputeDuration.Observe(duration.Seconds())
}

func (r *PrometheusRegistry) AddAdsProcessed(status string, n int) {
	if n > 0 {
		AdsProcessed.WithLabelValues(status).Add(float64(n))
	}
}

func (r *PrometheusRegistry) IncrementConfigWarnings(parameter string) {
	ConfigWarnings.WithLabelValues(parameter).Inc()
}

func (r *PrometheusRegistry) RecordMultiplier(multiplier float64) {
	Multiplier.Observe(multiplier)
}

func (r *PrometheusRegistry) SetCatalogSpend(amount float64) {
	CatalogSpend.Set(amount)
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing
type NoOpRegistry struct{}

func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

func (r *NoOpRegistry) IncrementRuns(outcome string)             {}
func (r *NoOpRegistry) RecordRunDuration(duration time.Duration) {}
func (r *NoOpRegistry) AddAdsProcessed(status string, n int)     {}
func (r *NoOpRegistry) IncrementConfigWarnings(parameter string) {}
func (r *NoOpRegistry) RecordMultiplier(multiplier float64)      {}
func (r *NoOpRegistry) SetCatalogSpend(amount float64)           {}
