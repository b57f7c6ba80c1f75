/*
Package tale is a small embeddable engine for turn-based, text-driven applications.

An application is a set of named scenarios, each of which renders output when
entered and reacts to lines of input, plus global commands that are available
regardless of the active scenario. The engine owns the session state, reads one
line per turn, lends the state to exactly one handler, and applies the outcome
the handler returns.

# Concept

Every handler call returns a domain.Outcome: Continue, TransitionTo(name) or
Terminate. A transition runs the target's on-enter handler and then commits it
as the active scenario; on-enter may itself redirect. A transition to a name
that was never registered is a configuration error and stops the engine.

Input that exactly matches a registered command name always runs that command
instead of the active scenario's on-input handler.

# Usage

	state := domain.NewBasicState()
	eng := tale.New(state)

	eng.RegisterScenario("start", domain.ScenarioFuncs[*domain.BasicState]{
		Enter: func(ctx context.Context, s *domain.BasicState) domain.Outcome {
			fmt.Println("You wake up in a dark room.")
			return domain.Continue()
		},
		Input: func(ctx context.Context, input string, s *domain.BasicState) domain.Outcome {
			if input == "open door" {
				return domain.TransitionTo("hall")
			}
			fmt.Println("Nothing happens.")
			return domain.Continue()
		},
	})
	eng.RegisterScenario("hall", hall)
	eng.RegisterCommand("exit", domain.CommandFunc[*domain.BasicState](
		func(ctx context.Context, s *domain.BasicState) domain.Outcome {
			return domain.Terminate()
		},
	))

	if err := eng.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
*/
package tale
