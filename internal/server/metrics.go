package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Reconciliations *prometheus.CounterVec
	Failures        *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mollie_reconciliations_total",
			Help: "Reconciliation runs by outcome.",
		}, []string{"outcome"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mollie_reconciliation_failures_total",
			Help: "Reconciliation failures by reason.",
		}, []string{"reason"}),
	}

	// Registration may repeat across test processes; the counters still
	// work unregistered.
	_ = prometheus.Register(m.Reconciliations)
	_ = prometheus.Register(m.Failures)

	return m
}
