package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.IncrementRowAction("refund", OutcomeSuccess)
	m.IncrementRowAction("refund", OutcomeSuccess)
	m.IncrementRowAction("refund", OutcomeBusy)
	m.IncrementActiveSessions()
	m.IncrementActiveSessions()
	m.DecrementActiveSessions()

	assert.InDelta(t, 2, testutil.ToFloat64(m.RowActions.WithLabelValues("refund", OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RowActions.WithLabelValues("refund", OutcomeBusy)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ActiveSessions), 0)
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementLogins(OutcomeFailure)
		m.IncrementAuthFailures()
		m.IncrementEntitiesCreated("retailer")
		m.IncrementListDegraded("tickets")
	})
}
