package domain

import (
	"errors"
	"fmt"
)

// ErrScenarioNotFound is matched by configuration errors raised when a
// transition targets a scenario that was never registered.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrRedirectLoop is matched when on-enter handlers keep redirecting past the engine limit.
var ErrRedirectLoop = errors.New("scenario redirect loop")

// ScenarioNotFoundError reports a transition to an unregistered scenario.
// It is a programming mistake in the host, never a user-input problem.
type ScenarioNotFoundError struct {
	// Name is the requested scenario.
	Name string
	// From is the scenario that was active when the transition was requested ("" at startup).
	From string
}

func (e *ScenarioNotFoundError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("scenario %q not found", e.Name)
	}
	return fmt.Sprintf("scenario %q not found (requested from %q)", e.Name, e.From)
}

func (e *ScenarioNotFoundError) Is(target error) bool {
	return target == ErrScenarioNotFound
}

// RedirectLoopError reports a chain of on-enter redirects that did not settle.
type RedirectLoopError struct {
	// Chain lists the scenarios entered, in order.
	Chain []string
	Limit int
}

func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("scenario redirects exceeded limit of %d: %v", e.Limit, e.Chain)
}

func (e *RedirectLoopError) Is(target error) bool {
	return target == ErrRedirectLoop
}
