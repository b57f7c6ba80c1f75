package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tale/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by engine lifecycle hooks.
type Metrics struct {
	ScenarioEnters *prometheus.CounterVec
	Commands       *prometheus.CounterVec
	Turns          prometheus.Counter
	Outcomes       *prometheus.CounterVec
	Stops          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ScenarioEnters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tale_scenario_enters_total",
				Help: "Total number of scenario loads, reloads included",
			},
			[]string{"scenario"},
		),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tale_commands_total",
				Help: "Total number of global command dispatches",
			},
			[]string{"command"},
		),
		Turns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tale_turns_total",
			Help: "Total number of dispatched input lines",
		}),
		Outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tale_outcomes_total",
				Help: "Handler outcomes by kind",
			},
			[]string{"kind"},
		),
		Stops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tale_engine_stops_total",
				Help: "Engine stops by reason",
			},
			[]string{"reason"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.ScenarioEnters, m.Commands, m.Turns, m.Outcomes, m.Stops)
	}
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnScenarioEnter: func(ctx context.Context, e *domain.ScenarioEvent) {
			m.ScenarioEnters.WithLabelValues(e.Scenario).Inc()
		},
		OnScenarioCommit: func(ctx context.Context, e *domain.ScenarioEvent) {
			m.Outcomes.WithLabelValues(e.Outcome.Kind().String()).Inc()
		},
		OnCommand: func(ctx context.Context, e *domain.DispatchEvent) {
			m.Turns.Inc()
			m.Commands.WithLabelValues(e.Command).Inc()
			m.Outcomes.WithLabelValues(e.Outcome.Kind().String()).Inc()
		},
		OnInput: func(ctx context.Context, e *domain.DispatchEvent) {
			m.Turns.Inc()
			m.Outcomes.WithLabelValues(e.Outcome.Kind().String()).Inc()
		},
		OnStop: func(ctx context.Context, e *domain.StopEvent) {
			m.Stops.WithLabelValues(e.Reason).Inc()
		},
	}
}
