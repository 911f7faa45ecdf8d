// Package metrics exposes sidebar and session counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter is a labelled counter.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a CounterVec.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounter creates a counter and registers it with reg.
func NewCounter(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(vec)

	return &Counter{
		Name: name,
		Help: help,
		vec:  vec,
	}
}

// Metrics is the set of scenedash metrics on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	Navigations IncrementalCounter // labels: path
	Toggles     IncrementalCounter // labels: state (expanded|collapsed)
	Events      IncrementalCounter // labels: type
	Sessions    IncrementalCounter // labels: event (created|expired)
	Active      prometheus.Gauge
}

// New registers every metric on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	active := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scenedash_sessions_active",
		Help: "Sessions currently held in memory.",
	})
	reg.MustRegister(active)

	return &Metrics{
		reg:         reg,
		Navigations: NewCounter(reg, "scenedash_navigations_total", "Navigation requests dispatched from the sidebar.", "path"),
		Toggles:     NewCounter(reg, "scenedash_group_toggles_total", "Group expand and collapse toggles.", "state"),
		Events:      NewCounter(reg, "scenedash_sidebar_events_total", "Sidebar events received.", "type"),
		Sessions:    NewCounter(reg, "scenedash_sessions_total", "Session lifecycle events.", "event"),
		Active:      active,
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
