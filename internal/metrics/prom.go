package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	relayRequestsInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_requests_inflight",
			Help: "Number of prompts currently waiting on the upstream model",
		},
	)

	relayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total number of relayed prompts by outcome",
		},
		[]string{"outcome"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_upstream_duration_seconds",
			Help:    "Latency of upstream model calls",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"},
	)
)

// Register adds the relay collectors to r.
func Register(r prometheus.Registerer) {
	r.MustRegister(relayRequestsInflight, relayRequestsTotal, upstreamDuration)
}

// UpstreamStart marks one upstream call as in flight.
func UpstreamStart() { relayRequestsInflight.Inc() }

// UpstreamEnd records the outcome and latency of one upstream call.
func UpstreamEnd(success bool, elapsed time.Duration) {
	relayRequestsInflight.Dec()

	outcome := OutcomeSuccess
	if !success {
		outcome = OutcomeFailure
	}
	relayRequestsTotal.WithLabelValues(outcome).Inc()
	upstreamDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
