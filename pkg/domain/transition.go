package domain

import "fmt"

// OutcomeKind identifies what the engine should do after a handler call.
type OutcomeKind int

const (
	// OutcomeContinue keeps the active scenario.
	OutcomeContinue OutcomeKind = iota
	// OutcomeTransition loads the scenario named by Outcome.Target.
	OutcomeTransition
	// OutcomeTerminate asks the engine for an orderly stop.
	OutcomeTerminate
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeTransition:
		return "transition"
	case OutcomeTerminate:
		return "terminate"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the value every handler returns to the engine.
// It is the only channel through which handlers influence the active scenario.
// The zero value is Continue.
type Outcome struct {
	kind   OutcomeKind
	target string
}

// Continue keeps the current scenario active.
func Continue() Outcome {
	return Outcome{kind: OutcomeContinue}
}

// TransitionTo requests the engine to load the named scenario.
// The name is validated when the engine commits the transition, not here.
func TransitionTo(name string) Outcome {
	return Outcome{kind: OutcomeTransition, target: name}
}

// Terminate requests an orderly stop of the engine loop.
func Terminate() Outcome {
	return Outcome{kind: OutcomeTerminate}
}

// Kind returns the outcome kind.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// Target returns the requested scenario name for transitions, or "".
func (o Outcome) Target() string {
	return o.target
}

// IsTransition reports whether the outcome requests a scenario load.
func (o Outcome) IsTransition() bool {
	return o.kind == OutcomeTransition
}

// IsTerminate reports whether the outcome requests a stop.
func (o Outcome) IsTerminate() bool {
	return o.kind == OutcomeTerminate
}

func (o Outcome) String() string {
	if o.kind == OutcomeTransition {
		return fmt.Sprintf("transition(%s)", o.target)
	}
	return o.kind.String()
}
