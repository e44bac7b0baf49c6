// Package metrics prometheus метрики фоновых процессов.
package metrics

import (
	"time"

	"github.com/fsdevblog/anticrisis/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// ReconcileMetrics метрики сверки счетчиков профилей.
type ReconcileMetrics struct {
	duration *prometheus.HistogramVec
	repaired *prometheus.CounterVec
	profiles prometheus.Counter
}

// NewReconcileMetrics регистрирует метрики на reg. При nil reg возвращает заглушку, все методы которой ничего
// не делают.
func NewReconcileMetrics(reg prometheus.Registerer) *ReconcileMetrics {
	if reg == nil {
		return &ReconcileMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "counter_reconcile_duration_seconds",
		Help:    "Duration of a full counter reconciliation pass in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})
	repaired := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "counter_drift_repaired_total",
		Help: "Profile counters rewritten by the reconciler because they drifted from source tables.",
	}, []string{"field"})
	profiles := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "counter_reconcile_profiles_total",
		Help: "Profiles checked by the reconciler.",
	})
	reg.MustRegister(duration, repaired, profiles)
	return &ReconcileMetrics{
		duration: duration,
		repaired: repaired,
		profiles: profiles,
	}
}

// ObservePass записывает длительность прохода. failed - проход завершился ошибкой.
func (m *ReconcileMetrics) ObservePass(duration time.Duration, failed bool) {
	if m == nil || m.duration == nil {
		return
	}
	status := "success"
	if failed {
		status = "failure"
	}
	m.duration.WithLabelValues(status).Observe(duration.Seconds())
}

func (m *ReconcileMetrics) AddProfiles(n int) {
	if m == nil || m.profiles == nil {
		return
	}
	m.profiles.Add(float64(n))
}

// AddDrifts учитывает исправленные расхождения по полям счетчиков.
func (m *ReconcileMetrics) AddDrifts(drifts []domain.CounterDrift) {
	if m == nil || m.repaired == nil {
		return
	}
	for _, drift := range drifts {
		m.repaired.WithLabelValues(string(drift.Field)).Inc()
	}
}
