package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablebook_allocations_total",
			Help: "Allocation attempts by outcome",
		},
		[]string{"outcome"},
	)

	allocationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tablebook_allocation_duration_seconds",
			Help:    "End-to-end allocation latency",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	commitRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tablebook_allocation_commit_retries_total",
			Help: "Commit retries after a lost allocation race",
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tablebook_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tablebook_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func RecordAllocation(outcome string, elapsed time.Duration) {
	allocationOutcomes.WithLabelValues(outcome).Inc()
	allocationDuration.Observe(elapsed.Seconds())
}

func RecordCommitRetry() {
	commitRetries.Inc()
}

func RecordHTTPRequest(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
