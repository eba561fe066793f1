package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the console-level Prometheus metrics shared across
// bounded contexts. Upstream call metrics live in internal/upstream.
type Metrics struct {
	Logins          *prometheus.CounterVec
	AuthFailures    prometheus.Counter
	ActiveSessions  prometheus.Gauge
	EntitiesCreated *prometheus.CounterVec
	RowActions      *prometheus.CounterVec
	ListsDegraded   *prometheus.CounterVec
}

// New registers on the default registry served at /metrics.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paynet_console_logins_total",
			Help: "Admin login attempts, labeled by outcome",
		}, []string{"outcome"}),
		AuthFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "paynet_console_auth_failures_total",
			Help: "Requests rejected for a missing, malformed or expired session",
		}),
		ActiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "paynet_console_active_sessions",
			Help: "Console sessions created minus sessions ended by this process",
		}),
		EntitiesCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paynet_console_entities_created_total",
			Help: "Hierarchy entities created, labeled by user type",
		}, []string{"user_type"}),
		RowActions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paynet_console_row_actions_total",
			Help: "Row actions (accept, reject, refund, revert, topup), labeled by action and outcome",
		}, []string{"action", "outcome"}),
		ListsDegraded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paynet_console_lists_degraded_total",
			Help: "List views served empty with a notice after a failed fetch",
		}, []string{"view"}),
	}
}

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
	OutcomeBusy     = "busy"
)

// The helpers below are nil-safe so CLI code paths can run without metrics.

func (m *Metrics) IncrementLogins(outcome string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementAuthFailures() {
	if m == nil {
		return
	}
	m.AuthFailures.Inc()
}

func (m *Metrics) IncrementActiveSessions() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) DecrementActiveSessions() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

func (m *Metrics) IncrementEntitiesCreated(userType string) {
	if m == nil {
		return
	}
	m.EntitiesCreated.WithLabelValues(userType).Inc()
}

func (m *Metrics) IncrementRowAction(action, outcome string) {
	if m == nil {
		return
	}
	m.RowActions.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) IncrementListDegraded(view string) {
	if m == nil {
		return
	}
	m.ListsDegraded.WithLabelValues(view).Inc()
}
