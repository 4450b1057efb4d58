// Package metrics defines the custom Prometheus metrics of the THRIVE API.
// It is the single source of truth for metric names, labels and help
// strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "thrive"

// ── Mock API metrics ──────────────────────────────────────────────────────────

// MockCallsTotal counts mock API calls.
// Labels:
//   - operation: the API function (e.g. "get_therapists")
//   - result: "ok", "not_found" or "cancelled"
var MockCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mock_api_calls_total",
		Help:      "Total number of mock API calls, by operation and result.",
	},
	[]string{"operation", "result"},
)

// MockCallDuration measures wall time of a mock call including its
// artificial latency.
var MockCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mock_api_call_duration_seconds",
		Help:      "Duration of mock API calls including simulated latency.",
		Buckets:   []float64{.01, .05, .1, .2, .3, .4, .5, .8, 1, 2},
	},
	[]string{"operation"},
)

// MatchScores records every generated therapist match score.
var MatchScores = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "therapist_match_score",
		Help:      "Distribution of generated therapist match scores.",
		Buckets:   prometheus.LinearBuckets(0.7, 0.05, 7),
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionOpsTotal counts session store mutations.
// Labels:
//   - op: "login", "signup", "logout", "update_profile" or "restore"
//   - result: "ok", "noop" or "error"
var SessionOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_operations_total",
		Help:      "Total number of session store operations, by op and result.",
	},
	[]string{"op", "result"},
)

// ── Polling metrics ───────────────────────────────────────────────────────────

// ActiveSubscriptions tracks live polling subscriptions and timers.
// Label:
//   - kind: "chat_poll", "call_timer", "workout_timer"
var ActiveSubscriptions = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_subscriptions",
		Help:      "Current number of live polling subscriptions and timers.",
	},
	[]string{"kind"},
)
