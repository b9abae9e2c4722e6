package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusRegistry(t *testing.T) {
	r := NewPrometheusRegistry()

	before := testutil.ToFloat64(RecomputeRuns.WithLabelValues("ok"))
	r.IncrementRuns("ok")
	assert.Equal(t, before+1, testutil.ToFloat64(RecomputeRuns.WithLabelValues("ok")))

	before = testutil.ToFloat64(AdsProcessed.WithLabelValues("skipped"))
	r.AddAdsProcessed("skipped", 3)
	r.AddAdsProcessed("skipped", 0)
	assert.Equal(t, before+3, testutil.ToFloat64(AdsProcessed.WithLabelValues("skipped")))

	before = testutil.ToFloat64(ConfigWarnings.WithLabelValues("cpm"))
	r.IncrementConfigWarnings("cpm")
	assert.Equal(t, before+1, testutil.ToFloat64(ConfigWarnings.WithLabelValues("cpm")))

	r.SetCatalogSpend(12.5)
	assert.Equal(t, 12.5, testutil.ToFloat64(CatalogSpend))

	r.RecordRunDuration(time.Second)
	r.RecordMultiplier(1.3)
	assert.Equal(t, 1, testutil.CollectAndCount(RecomputeDuration))
}

func TestNoOpRegistry(t *testing.T) {
	var r MetricsRegistry = NewNoOpRegistry()

	assert.NotPanics(t, func() {
		r.IncrementRuns("ok")
		r.RecordRunDuration(time.Second)
		r.AddAdsProcessed("succeeded", 1)
		r.IncrementConfigWarnings("cpm")
		r.RecordMultiplier(1)
		r.SetCatalogSpend(1)
	})
}
