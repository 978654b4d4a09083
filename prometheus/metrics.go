package prometheus

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Calls made to the records and uploads endpoints
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// Form submissions by outcome (created, invalid, failed)
	SubmissionsCounter *prometheus.CounterVec

	// Catalog store operations
	StoreOperationDuration *prometheus.HistogramVec

	once sync.Once
)

// InitMetrics registers the metrics with the default registry using the
// given name prefix. Only the first call has any effect.
func InitMetrics(prefix string) {
	once.Do(func() {
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

		UpstreamRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_upstream_requests_total",
				Help: "Total number of requests sent to the product API",
			},
			[]string{"operation", "status"},
		)

		UpstreamRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_upstream_request_duration_seconds",
				Help:    "Duration of requests sent to the product API in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "status"},
		)

		SubmissionsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_submissions_total",
				Help: "Total number of product form submissions by outcome",
			},
			[]string{"outcome"},
		)

		StoreOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_store_operation_duration_seconds",
				Help:    "Duration of catalog store operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
	})
}

// ObserveHTTP records one served HTTP request
func ObserveHTTP(method, path string, status int, duration time.Duration) {
	if HttpRequestsTotal == nil {
		return
	}
	s := strconv.Itoa(status)
	HttpRequestsTotal.WithLabelValues(method, path, s).Inc()
	HttpRequestDuration.WithLabelValues(method, path, s).Observe(duration.Seconds())
}

// ObserveUpstream records one call to the product API. A status of zero
// means the request never got a response.
func ObserveUpstream(operation string, status int, duration time.Duration) {
	if UpstreamRequestsTotal == nil {
		return
	}
	s := "error"
	if status > 0 {
		s = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(operation, s).Inc()
	UpstreamRequestDuration.WithLabelValues(operation, s).Observe(duration.Seconds())
}

// ObserveSubmission counts one form submission outcome
func ObserveSubmission(outcome string) {
	if SubmissionsCounter == nil {
		return
	}
	SubmissionsCounter.WithLabelValues(outcome).Inc()
}

// ObserveStore records one catalog store operation
func ObserveStore(operation string, duration time.Duration) {
	if StoreOperationDuration == nil {
		return
	}
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
