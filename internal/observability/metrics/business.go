// Package metrics carries the domain-level Prometheus metrics. HTTP and
// pagination metrics live next to the code that records them; what lives
// here is the publishing activity itself.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transmissionWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transmission_writes_total",
			Help: "Total transmission create, update and delete operations",
		},
		[]string{"operation", "result"},
	)

	tagsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tags_created_total",
			Help: "Total tags created through the API",
		},
	)

	sourcesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sources_created_total",
			Help: "Total sources registered through the API",
		},
	)

	timelineIndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "timeline_index_build_duration_seconds",
			Help:    "Time taken to rebuild the timeline availability index",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)
)

// RecordTransmissionWrite records a create, update or delete attempt.
func RecordTransmissionWrite(operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	transmissionWritesTotal.WithLabelValues(operation, result).Inc()
}

// RecordTagCreated records a successful tag creation.
func RecordTagCreated() {
	tagsCreatedTotal.Inc()
}

// RecordSourceCreated records a successful source registration.
func RecordSourceCreated() {
	sourcesCreatedTotal.Inc()
}

// RecordTimelineIndexBuild records one availability index rebuild.
func RecordTimelineIndexBuild(d time.Duration) {
	timelineIndexBuildDuration.Observe(d.Seconds())
}
