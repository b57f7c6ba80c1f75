package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/aretw0/tale"
	"github.com/aretw0/tale/internal/presentation/tui"
	"github.com/aretw0/tale/pkg/domain"
)

type state = *domain.BasicState

const flagInStart = "in_start"

// adventure is the demo played by `tale run`.
type adventure struct {
	out    io.Writer
	render tui.Renderer
}

func newAdventureState() state {
	s := domain.NewBasicState()
	resetAdventure(context.Background(), s)
	return s
}

func resetAdventure(_ context.Context, s state) {
	s.Clear()
	s.SetFlag(flagInStart, true)
}

func (a *adventure) say(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	rendered, err := a.render(msg)
	if err != nil {
		rendered = msg
	}
	fmt.Fprintln(a.out, rendered)
}

func registerAdventure(engine *tale.Engine[state], a *adventure) error {
	commands := map[string]domain.Command[state]{
		"exit":    domain.CommandFunc[state](a.exit),
		"quit":    domain.CommandFunc[state](a.exit),
		"help":    domain.CommandFunc[state](a.help),
		"status":  domain.CommandFunc[state](a.status),
		"restart": domain.CommandFunc[state](a.restart),
	}

	errs := []error{
		engine.RegisterScenario("start", a.start()),
		engine.RegisterScenario("second", a.second()),
		engine.RegisterScenario("reset", domain.Redirect[state]("start", resetAdventure)),
	}
	for name, cmd := range commands {
		errs = append(errs, engine.RegisterCommand(name, cmd))
	}
	return errors.Join(errs...)
}

func (a *adventure) start() domain.Scenario[state] {
	return domain.ScenarioFuncs[state]{
		Enter: func(ctx context.Context, s state) domain.Outcome {
			a.say("This is the start scenario")
			a.say("Value of in_start: %t", s.Flag(flagInStart))
			return domain.Continue()
		},
		Input: func(ctx context.Context, input string, s state) domain.Outcome {
			a.say("Your command was %s", input)
			if input == "tick" {
				s.AddValue("ticks", 1)
				a.say("ticking")
				return domain.Continue()
			}
			a.say("Setting in_start to false and loading next scenario...")
			s.SetFlag(flagInStart, false)
			return domain.TransitionTo("second")
		},
	}
}

func (a *adventure) second() domain.Scenario[state] {
	return domain.ScenarioFuncs[state]{
		Enter: func(ctx context.Context, s state) domain.Outcome {
			a.say("This is the second scenario")
			a.say("Value of in_start: %t", s.Flag(flagInStart))
			return domain.Continue()
		},
		Input: func(ctx context.Context, input string, s state) domain.Outcome {
			a.say("Your command was %s", input)
			a.say("This scenario does nothing")
			a.say("Value of in_start: %t", s.Flag(flagInStart))
			return domain.Continue()
		},
	}
}

func (a *adventure) exit(ctx context.Context, s state) domain.Outcome {
	a.say("Exiting game")
	return domain.Terminate()
}

func (a *adventure) help(ctx context.Context, s state) domain.Outcome {
	fmt.Fprintln(a.out, tui.Panel("Commands", []tui.Entry{
		{Key: "exit, quit", Value: "leave the game"},
		{Key: "help", Value: "show this list"},
		{Key: "restart", Value: "start over with a fresh state"},
		{Key: "status", Value: "show the current state"},
	}))
	return domain.Continue()
}

func (a *adventure) status(ctx context.Context, s state) domain.Outcome {
	entries := []tui.Entry{{Key: "scenario", Value: s.CurrentScenario()}}

	flags := s.Flags()
	for _, name := range slices.Sorted(maps.Keys(flags)) {
		entries = append(entries, tui.Entry{Key: name, Value: strconv.FormatBool(flags[name])})
	}
	values := s.Values()
	for _, name := range slices.Sorted(maps.Keys(values)) {
		entries = append(entries, tui.Entry{Key: name, Value: strconv.Itoa(values[name])})
	}

	fmt.Fprintln(a.out, tui.Panel("Status", entries))
	return domain.Continue()
}

func (a *adventure) restart(ctx context.Context, s state) domain.Outcome {
	a.say("Restarting...")
	return domain.TransitionTo("reset")
}
