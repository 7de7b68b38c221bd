// Package metrics counts menu activity with Prometheus collectors and writes
// them in the text exposition format for node_exporter's textfile collector.
package metrics

import (
	"github.com/drake200120xx/constorm/pkg/menu"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the session collectors on a private registry.
type Metrics struct {
	reg       *prometheus.Registry
	visits    *prometheus.CounterVec
	reprompts *prometheus.CounterVec
	sessions  prometheus.Counter
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		visits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "constorm_node_visits_total",
				Help: "Total number of node visits",
			},
			[]string{"node", "kind"},
		),
		reprompts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "constorm_reprompts_total",
				Help: "Total number of invalid answers that caused a re-prompt",
			},
			[]string{"node"},
		),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "constorm_sessions_total",
			Help: "Total number of sessions started",
		}),
	}
	m.reg.MustRegister(m.visits, m.reprompts, m.sessions)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// SessionStarted counts a new session.
func (m *Metrics) SessionStarted() { m.sessions.Inc() }

// Hooks returns hooks that record metrics and then call the matching hook of next.
func (m *Metrics) Hooks(next menu.Hooks) menu.Hooks {
	return menu.Hooks{
		OnNodeEnter: func(e *menu.NodeEvent) {
			m.visits.WithLabelValues(e.Name, string(e.Kind)).Inc()
			if next.OnNodeEnter != nil {
				next.OnNodeEnter(e)
			}
		},
		OnNodeLeave: next.OnNodeLeave,
		OnReprompt: func(e *menu.NodeEvent) {
			m.reprompts.WithLabelValues(e.Name).Inc()
			if next.OnReprompt != nil {
				next.OnReprompt(e)
			}
		},
	}
}

// WriteFile writes every collector to path atomically.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
