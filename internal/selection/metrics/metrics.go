package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ScansTotal        prometheus.Counter
	FocusChangesTotal prometheus.Counter
	CompareBuilds     prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ScansTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "packport_selection_scans_total",
			Help: "Total number of products added to the comparison selection",
		}),
		FocusChangesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "packport_selection_focus_changes_total",
			Help: "Total number of focus changes within the selection",
		}),
		CompareBuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "packport_selection_compare_builds_total",
			Help: "Total number of comparison tables built",
		}),
	}
}

// A nil receiver is a no-op so handlers can run without a registry in tests.

func (m *Metrics) IncrementScans() {
	if m == nil {
		return
	}
	m.ScansTotal.Inc()
}

func (m *Metrics) IncrementFocusChanges() {
	if m == nil {
		return
	}
	m.FocusChangesTotal.Inc()
}

func (m *Metrics) IncrementCompareBuilds() {
	if m == nil {
		return
	}
	m.CompareBuilds.Inc()
}
