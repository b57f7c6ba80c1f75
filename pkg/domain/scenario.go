package domain

import "context"

// Scenario is a named state of the interaction.
// One instance is registered per name and receives the session State by
// pointer for the duration of each call only.
type Scenario[S State] interface {
	// OnEnter runs once per load, including reloads of the active scenario.
	// It may render output, mutate state, or redirect by returning TransitionTo.
	OnEnter(ctx context.Context, state S) Outcome

	// OnInput runs once per turn while the scenario is active and the input
	// did not match a global command.
	OnInput(ctx context.Context, input string, state S) Outcome
}

// Command is a global handler invoked when the input exactly matches its
// registered name, regardless of the active scenario.
type Command[S State] interface {
	Execute(ctx context.Context, state S) Outcome
}

// ScenarioFuncs adapts plain functions to the Scenario interface.
// A nil function returns Continue.
type ScenarioFuncs[S State] struct {
	Enter func(ctx context.Context, state S) Outcome
	Input func(ctx context.Context, input string, state S) Outcome
}

func (f ScenarioFuncs[S]) OnEnter(ctx context.Context, state S) Outcome {
	if f.Enter == nil {
		return Continue()
	}
	return f.Enter(ctx, state)
}

func (f ScenarioFuncs[S]) OnInput(ctx context.Context, input string, state S) Outcome {
	if f.Input == nil {
		return Continue()
	}
	return f.Input(ctx, input, state)
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc[S State] func(ctx context.Context, state S) Outcome

func (f CommandFunc[S]) Execute(ctx context.Context, state S) Outcome {
	return f(ctx, state)
}

// Redirect returns a scenario whose on-enter immediately forwards to target.
// Useful for "apply effects, then continue elsewhere" entries; effects may be nil.
func Redirect[S State](target string, effects func(ctx context.Context, state S)) Scenario[S] {
	return ScenarioFuncs[S]{
		Enter: func(ctx context.Context, state S) Outcome {
			if effects != nil {
				effects(ctx, state)
			}
			return TransitionTo(target)
		},
	}
}
