package domain

// State is the capability set the engine needs from the host's session data.
// The domain payload behind it is invisible to the engine.
//
// Hosts satisfy State by embedding Base. SetPendingTransition and
// CommitTransition are reserved for the engine; handlers request transitions
// by returning an Outcome.
type State interface {
	// CurrentScenario returns the name of the active scenario ("" before start).
	CurrentScenario() string

	// PendingTransition returns the scenario being loaded, if a load is in progress.
	PendingTransition() (string, bool)

	// SetPendingTransition marks the start of a load sequence.
	SetPendingTransition(name string)

	// CommitTransition makes the pending scenario current and clears it.
	CommitTransition()
}

// Base implements the engine-visible part of State.
type Base struct {
	current    string
	pending    string
	hasPending bool
}

// CurrentScenario returns the active scenario name.
func (b *Base) CurrentScenario() string {
	return b.current
}

// PendingTransition returns the scenario being entered.
// It is only set while an on-enter handler runs.
func (b *Base) PendingTransition() (string, bool) {
	return b.pending, b.hasPending
}

// SetPendingTransition records the scenario whose load sequence has begun.
func (b *Base) SetPendingTransition(name string) {
	b.pending = name
	b.hasPending = true
}

// CommitTransition makes the pending scenario current.
// It is a no-op when no transition is pending.
func (b *Base) CommitTransition() {
	if !b.hasPending {
		return
	}
	b.current = b.pending
	b.pending = ""
	b.hasPending = false
}
