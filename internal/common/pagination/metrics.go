package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paginated list requests.
	// Labels: status (HTTP status code), page_range (page bucket).
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transmission_pagination_requests_total",
			Help: "Total number of paginated transmission list requests",
		},
		[]string{"status", "page_range"},
	)

	// TotalCount tracks the total number of published transmissions,
	// updated on each COUNT query.
	TotalCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "transmission_total_count",
			Help: "Current total number of published transmissions",
		},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, database)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transmission_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records one paginated list request.
func RecordRequest(statusCode, page int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), pageRangeBucket(page)).Inc()
}

// RecordError records a pagination error by type.
func RecordError(errType string) {
	ErrorsTotal.WithLabelValues(errType).Inc()
}

// pageRangeBucket groups page numbers into coarse buckets so the label
// cardinality stays bounded.
func pageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
