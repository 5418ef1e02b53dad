package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	MessagesSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_submitted_total",
			Help: "Total number of messages durably stored",
		},
	)

	CacheMirrorFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_mirror_failures_total",
			Help: "Cache mirror writes that failed after a durable insert",
		},
	)
)
