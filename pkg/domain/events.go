package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventScenarioEnter  EventType = "scenario_enter"
	EventScenarioCommit EventType = "scenario_commit"
	EventCommand        EventType = "command"
	EventInput          EventType = "input"
	EventStop           EventType = "stop"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// ScenarioEvent is emitted around a scenario load.
type ScenarioEvent struct {
	EventBase
	Scenario string `json:"scenario"`
	// From is the scenario that was active before the load ("" at startup).
	From    string  `json:"from,omitempty"`
	Outcome Outcome `json:"-"`
}

// DispatchEvent is emitted after a turn's handler returned.
type DispatchEvent struct {
	EventBase
	// Scenario is the active scenario during the turn.
	Scenario string  `json:"scenario"`
	Command  string  `json:"command,omitempty"`
	Input    string  `json:"input,omitempty"`
	Outcome  Outcome `json:"-"`
}

// StopEvent is emitted once when the engine leaves the loop.
type StopEvent struct {
	EventBase
	Scenario string `json:"scenario"`
	Reason   string `json:"reason"`
	Err      error  `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnScenarioEnter  func(context.Context, *ScenarioEvent)
	OnScenarioCommit func(context.Context, *ScenarioEvent)
	OnCommand        func(context.Context, *DispatchEvent)
	OnInput          func(context.Context, *DispatchEvent)
	OnStop           func(context.Context, *StopEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnScenarioEnter:  chain(h.OnScenarioEnter, other.OnScenarioEnter),
		OnScenarioCommit: chain(h.OnScenarioCommit, other.OnScenarioCommit),
		OnCommand:        chain(h.OnCommand, other.OnCommand),
		OnInput:          chain(h.OnInput, other.OnInput),
		OnStop:           chain(h.OnStop, other.OnStop),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
