package course

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opAdd    = "add"
	opRemove = "remove"
	opClear  = "clear"
)

// Metrics instruments tree mutations. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	mutations *prometheus.CounterVec
	courses   prometheus.Gauge
	nodes     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	// create collectors
	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "prereqs",
			Name:      "mutations_total",
			Help:      "The number of tree mutations by operation and result.",
		}, []string{"op", "result"}),
		courses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "prereqs",
			Name:      "indexed_courses",
			Help:      "The number of indexed course names.",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "prereqs",
			Name:      "tree_nodes",
			Help:      "The number of nodes below the root.",
		}),
	}

	// register collectors
	reg.MustRegister(m.mutations, m.courses, m.nodes)

	return m
}

func (m *Metrics) observe(op string, err error) {
	// check metrics
	if m == nil {
		return
	}

	// get result
	result := "ok"
	switch {
	case errors.Is(err, ErrInvalidInput):
		result = "invalid"
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	}

	m.mutations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) update(courses, nodes int) {
	// check metrics
	if m == nil {
		return
	}

	m.courses.Set(float64(courses))
	m.nodes.Set(float64(nodes))
}
