package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewReconcileMetrics(reg)

	m.ObservePass(250*time.Millisecond, false)
	m.AddProfiles(3)
	m.AddDrifts([]domain.CounterDrift{
		{UserID: 1, Field: domain.CounterFollowers, Stored: 2, Computed: 1},
		{UserID: 2, Field: domain.CounterFollowers, Stored: 0, Computed: 1},
		{UserID: 2, Field: domain.CounterDiscountsUsed, Stored: 5, Computed: 4},
	})

	mfs, err := reg.Gather()
	require.NoError(t, err)

	followers, err := fetchCounterValue(mfs, "counter_drift_repaired_total", "field", "followers_count")
	require.NoError(t, err)
	assert.InDelta(t, 2, followers, 0)

	used, err := fetchCounterValue(mfs, "counter_drift_repaired_total", "field", "discounts_used_count")
	require.NoError(t, err)
	assert.InDelta(t, 1, used, 0)

	profiles := findMetricFamily(mfs, "counter_reconcile_profiles_total")
	require.NotNil(t, profiles)
	assert.InDelta(t, 3, profiles.GetMetric()[0].GetCounter().GetValue(), 0)

	durations := findMetricFamily(mfs, "counter_reconcile_duration_seconds")
	require.NotNil(t, durations)
	assert.Equal(t, uint64(1), durations.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestReconcileMetricsNilSafe(t *testing.T) {
	var nilMetrics *ReconcileMetrics
	assert.NotPanics(t, func() {
		nilMetrics.ObservePass(time.Second, true)
		nilMetrics.AddProfiles(1)
		nilMetrics.AddDrifts([]domain.CounterDrift{{Field: domain.CounterFollowers}})

		noop := NewReconcileMetrics(nil)
		noop.ObservePass(time.Second, false)
		noop.AddDrifts([]domain.CounterDrift{{Field: domain.CounterFollowings}})
	})
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == label && pair.GetValue() == value {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
