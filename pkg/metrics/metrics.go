package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProjectTransitionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_transition_total",
			Help: "Applied project status transitions",
		},
		[]string{"from", "to"},
	)

	SideEffectCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "side_effect_total",
			Help: "Dispatched side effects by outcome",
		},
		[]string{"type", "result"}, // result: ok, failed, duplicate, skipped
	)

	GatewayCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_call_latency_ms",
			Help:    "Payment and transfer gateway call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(50, 2, 10), // 50ms to ~25s
		},
		[]string{"gateway", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

func RecordTransition(from, to string) {
	ProjectTransitionCount.WithLabelValues(from, to).Inc()
}

func RecordSideEffect(effectType, result string) {
	SideEffectCount.WithLabelValues(effectType, result).Inc()
}

func RecordGatewayCall(gateway, status string, duration time.Duration) {
	GatewayCallLatency.WithLabelValues(gateway, status).Observe(float64(duration.Milliseconds()))
}

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
