// Package metrics holds the Prometheus collectors exported by the bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "trading_bridge"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics groups bridge collectors.
type Metrics struct {
	// ConnectAttempts counts subprocess connection attempts by outcome.
	ConnectAttempts *prometheus.CounterVec
	// Invocations counts tool invocations by tool and outcome.
	Invocations *prometheus.CounterVec
	// FallbackMatches counts fallback rule matches by rule.
	FallbackMatches *prometheus.CounterVec
}

// New creates collectors registered with reg; a nil reg leaves them
// unregistered.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ConnectAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connect_attempts_total",
			Help:      "Total number of tool server connection attempts by outcome",
		}, []string{"outcome"}),
		Invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invocations_total",
			Help:      "Total number of tool invocations by tool and outcome",
		}, []string{"tool", "outcome"}),
		FallbackMatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_matches_total",
			Help:      "Total number of fallback rule matches by rule",
		}, []string{"rule"}),
	}
}

// RecordConnect increments the connection attempt counter.
func (m *Metrics) RecordConnect(err error) {
	if m == nil {
		return
	}
	m.ConnectAttempts.WithLabelValues(outcome(err)).Inc()
}

// RecordInvocation increments the invocation counter.
func (m *Metrics) RecordInvocation(tool string, failed bool) {
	if m == nil {
		return
	}
	label := OutcomeSuccess
	if failed {
		label = OutcomeError
	}
	m.Invocations.WithLabelValues(tool, label).Inc()
}

// RecordFallback increments the fallback match counter.
func (m *Metrics) RecordFallback(rule string) {
	if m == nil {
		return
	}
	m.FallbackMatches.WithLabelValues(rule).Inc()
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
