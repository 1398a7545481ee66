// Package slo publishes the service level objective gauges for the
// public read path. The gauges are fed periodically from recent request
// measurements, typically by a recording rule or a small cron.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Targets for the public browse endpoints. Editorial writes are low
// volume and excluded from these objectives.
const (
	AvailabilitySLO = 99.9
	LatencyP95SLO   = 0.200
	LatencyP99SLO   = 0.500
	ErrorRateSLO    = 0.001
)

var (
	availability = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Current availability ratio (0-1), target: 0.999",
	})

	latencyP95 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p95_seconds",
		Help: "Current p95 latency in seconds, target: 0.200",
	})

	latencyP99 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p99_seconds",
		Help: "Current p99 latency in seconds, target: 0.500",
	})

	errorRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_error_rate_ratio",
		Help: "Current error rate ratio (0-1), target: 0.001",
	})
)

// UpdateAvailability sets the availability gauge from the latest window,
// computed as (total - 5xx) / total.
func UpdateAvailability(ratio float64) { availability.Set(ratio) }

// UpdateLatencyP95 sets the p95 latency gauge in seconds.
func UpdateLatencyP95(seconds float64) { latencyP95.Set(seconds) }

// UpdateLatencyP99 sets the p99 latency gauge in seconds.
func UpdateLatencyP99(seconds float64) { latencyP99.Set(seconds) }

// UpdateErrorRate sets the error rate gauge from the latest window.
func UpdateErrorRate(ratio float64) { errorRate.Set(ratio) }
