package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream task/staff service call latency in milliseconds.
	UpstreamCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_call_latency_ms",
			Help:    "Upstream service call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"service", "status"},
	)

	// Database query latency in seconds.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "table"},
	)

	// HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Facet derivation latency in seconds, per field.
	FacetDeriveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "facet_derive_duration_seconds",
			Help:    "Filter facet derivation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10),
		},
		[]string{"field"},
	)

	// Board loads, labelled by outcome of each upstream fetch.
	BoardLoadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_load_count",
			Help: "Total number of workplan board loads",
		},
		[]string{"tasks", "staff"}, // ok / failed per fetch
	)

	// Slow query counter fed by the pgx tracer hook.
	SlowQueryCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "db_slow_query_count",
			Help: "Total number of queries slower than the configured threshold",
		},
	)

	// Staff-directory failure notifications actually published.
	StaffNotifyCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "staff_notify_count",
			Help: "Total number of staff directory failure notifications published",
		},
	)
)

// RecordUpstreamCallLatency records one upstream service call.
func RecordUpstreamCallLatency(service, status string, duration time.Duration) {
	UpstreamCallLatency.WithLabelValues(service, status).Observe(float64(duration.Milliseconds()))
}

// RecordDBQueryDuration records one repository query.
func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

// RecordHTTPRequestDuration records one handled HTTP request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordFacetDeriveDuration records one facet derivation pass.
func RecordFacetDeriveDuration(field string, duration time.Duration) {
	FacetDeriveDuration.WithLabelValues(field).Observe(duration.Seconds())
}

// IncrementBoardLoad counts one board load with per-fetch outcomes.
func IncrementBoardLoad(tasksOutcome, staffOutcome string) {
	BoardLoadCount.WithLabelValues(tasksOutcome, staffOutcome).Inc()
}

// IncrementSlowQuery counts one slow query.
func IncrementSlowQuery() {
	SlowQueryCount.Inc()
}

// IncrementStaffNotify counts one published staff failure notification.
func IncrementStaffNotify() {
	StaffNotifyCount.Inc()
}
