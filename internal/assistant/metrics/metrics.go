package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RepliesTotal   *prometheus.CounterVec
	CancelledTotal prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		RepliesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "packport_assistant_replies_total",
			Help: "Total number of assistant replies delivered",
		}, []string{"outcome"}),
		CancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "packport_assistant_cancelled_total",
			Help: "Total number of assistant replies dropped before delivery",
		}),
	}
}

// A nil receiver is a no-op so the service can run without a registry in tests.

func (m *Metrics) IncrementReplies(scripted bool) {
	if m == nil {
		return
	}
	outcome := "fallback"
	if scripted {
		outcome = "scripted"
	}
	m.RepliesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementCancelled() {
	if m == nil {
		return
	}
	m.CancelledTotal.Inc()
}
