package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Property metrics
	PropertyOperationsCounter *prometheus.CounterVec
	PropertyViewsCounter      prometheus.Counter
	ViewEventsDroppedCounter  prometheus.Counter

	// Search metrics
	SearchIndexErrorsCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with the configured prefix
func InitMetrics(prefix string) {
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	PropertyOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_property_operations_total",
			Help: "Total number of property operations",
		},
		[]string{"operation"},
	)

	PropertyViewsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_property_views_total",
			Help: "Total number of property detail views recorded",
		},
	)

	ViewEventsDroppedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_view_events_dropped_total",
			Help: "Total number of view events dropped due to a full buffer",
		},
	)

	SearchIndexErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_search_index_errors_total",
			Help: "Total number of search index operation failures",
		},
	)
}

// RecordPropertyOperation increments the counter for property operations
func RecordPropertyOperation(operation string) {
	PropertyOperationsCounter.WithLabelValues(operation).Inc()
}
