// Package metrics provides Prometheus metrics for calls to the upstream API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CallsTotal          *prometheus.CounterVec   // by endpoint and outcome
	CallDurationSeconds *prometheus.HistogramVec // by endpoint
	ItemsDecoded        *prometheus.HistogramVec // list sizes by endpoint
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CallsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "paynet_upstream_calls_total",
			Help: "Upstream API calls by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),

		CallDurationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paynet_upstream_call_duration_seconds",
			Help:    "Duration of upstream API calls by endpoint",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"endpoint"}),

		ItemsDecoded: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paynet_upstream_list_items",
			Help:    "Number of items decoded from upstream list responses",
			Buckets: prometheus.ExponentialBuckets(1, 4, 7),
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) RecordCall(endpoint, outcome string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.CallsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.CallDurationSeconds.WithLabelValues(endpoint).Observe(durationSeconds)
}

func (m *Metrics) ObserveItems(endpoint string, n int) {
	if m == nil {
		return
	}
	m.ItemsDecoded.WithLabelValues(endpoint).Observe(float64(n))
}
