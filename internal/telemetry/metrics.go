package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ScansTotal counts WiFi environment scans served
	ScansTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "roomsignal",
			Name:      "scans_total",
			Help:      "Total number of WiFi environment scans performed",
		},
	)

	// ScanDuration observes end-to-end scan latency, dominated by the
	// inventory utility and the ping probe
	ScanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "roomsignal",
			Name:      "scan_duration_seconds",
			Help:      "End-to-end duration of a WiFi environment scan",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30},
		},
	)

	// DiagnosticFailures counts failed diagnostic utility invocations
	DiagnosticFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "roomsignal",
			Name:      "diagnostic_failures_total",
			Help:      "Total number of failed diagnostic utility invocations",
		},
		[]string{"utility", "reason"},
	)

	// NetworksObserved tracks how many nearby networks the last scan saw
	NetworksObserved = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "roomsignal",
			Name:      "networks_observed",
			Help:      "Number of nearby networks seen by the most recent scan",
		},
	)

	once sync.Once
)

// InitMetrics registers all metrics with the default Prometheus
// registry. Idempotent, safe to call from multiple entry points.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.MustRegister(
			ScansTotal,
			ScanDuration,
			DiagnosticFailures,
			NetworksObserved,
		)
	})
}
