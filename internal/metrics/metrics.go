package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	// HTTPInFlight tracks requests currently being served.
	HTTPInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "studio_console",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	// HTTPRequests counts handled requests by method, route and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio_console",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration observes request latency by method and route.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "studio_console",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	// TaskAdvances counts task lifecycle transitions by resulting status.
	TaskAdvances = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio_console",
			Subsystem: "tasks",
			Name:      "advances_total",
			Help:      "Total number of task status advances.",
		},
		[]string{"status"},
	)

	// ApprovalDecisions counts approval workflow outcomes.
	ApprovalDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio_console",
			Subsystem: "approvals",
			Name:      "decisions_total",
			Help:      "Total number of approval decisions.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		HTTPInFlight,
		HTTPRequests,
		HTTPDuration,
		TaskAdvances,
		ApprovalDecisions,
	)
}

// Handler exposes the registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
