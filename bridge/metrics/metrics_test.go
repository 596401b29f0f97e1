package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordConnect(nil)
	m.RecordConnect(errors.New("spawn failed"))
	m.RecordConnect(errors.New("handshake failed"))
	assert.EqualValues(t, 1, testutil.ToFloat64(m.ConnectAttempts.WithLabelValues(OutcomeSuccess)))
	assert.EqualValues(t, 2, testutil.ToFloat64(m.ConnectAttempts.WithLabelValues(OutcomeError)))

	m.RecordInvocation("get_top_traded_assets", false)
	m.RecordInvocation("get_top_traded_assets", true)
	assert.EqualValues(t, 1, testutil.ToFloat64(m.Invocations.WithLabelValues("get_top_traded_assets", OutcomeError)))

	m.RecordFallback("top-traded")
	assert.EqualValues(t, 1, testutil.ToFloat64(m.FallbackMatches.WithLabelValues("top-traded")))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordConnect(nil)
		m.RecordInvocation("x", false)
		m.RecordFallback("x")
	})
}

func TestNew_Unregistered(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil)
		New(nil)
	})
}
