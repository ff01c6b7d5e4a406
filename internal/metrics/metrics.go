// Package metrics exposes Prometheus metrics for platform token refreshes and platform API calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
	OutcomeOpen     = "circuit_open"
)

var (
	// TokenRefreshTotal counts refresh attempts by platform and outcome
	TokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_refresh_total",
			Help: "Total number of platform token refresh attempts",
		},
		[]string{"platform", "outcome"},
	)

	// PlatformAPICallsTotal counts outbound platform API calls
	PlatformAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_api_calls_total",
			Help: "Total number of platform API calls",
		},
		[]string{"platform", "operation", "outcome"},
	)

	// PlatformAPICallDuration tracks platform API latency
	PlatformAPICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "platform_api_call_duration_seconds",
			Help:    "Duration of platform API calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"platform", "operation"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "platform_circuit_breaker_state",
			Help: "Circuit breaker state per platform (0 closed, 1 half-open, 2 open)",
		},
		[]string{"platform"},
	)
)

// RecordRefresh records one refresh attempt
func RecordRefresh(platform, outcome string) {
	TokenRefreshTotal.WithLabelValues(platform, outcome).Inc()
}

// RecordAPICall records one platform API call
func RecordAPICall(platform, operation, outcome string, duration time.Duration) {
	PlatformAPICallsTotal.WithLabelValues(platform, operation, outcome).Inc()
	PlatformAPICallDuration.WithLabelValues(platform, operation).Observe(duration.Seconds())
}

// SetBreakerState records the state of a platform circuit breaker
func SetBreakerState(platform string, state float64) {
	CircuitBreakerState.WithLabelValues(platform).Set(state)
}
