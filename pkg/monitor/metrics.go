package monitor

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

var (
	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_alerts_total",
			Help: "Total number of alerts raised",
		},
		[]string{"vital", "priority"},
	)

	AlertOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_alert_outcomes_total",
			Help: "Alerts split by whether they coincided with a simulated event",
		},
		[]string{"outcome"}, // outcome: true_positive, false_positive
	)

	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vitals_ticks_total",
			Help: "Total number of monitor ticks",
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vitals_tick_duration_seconds",
			Help:    "Time taken to process one tick",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	RetainedAlerts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vitals_retained_alerts",
			Help: "Alerts currently inside the retention window",
		},
	)

	EventsInjectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitals_events_injected_total",
			Help: "Simulated deterioration events injected",
		},
		[]string{"patient_id"},
	)
)

// recordAlert updates the session counters and their Prometheus mirror.
func recordAlert(m *models.Metrics, a models.Alert) {
	m.TotalAlerts++
	AlertsTotal.WithLabelValues(string(a.Vital), strconv.Itoa(int(a.Priority))).Inc()

	if a.TruePositive {
		m.TruePositives++
		AlertOutcomesTotal.WithLabelValues("true_positive").Inc()
	} else {
		m.FalsePositives++
		AlertOutcomesTotal.WithLabelValues("false_positive").Inc()
	}
}
