package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/tale/pkg/domain"
	"github.com/aretw0/tale/pkg/ports"
)

// turn reads one line and dispatches it to exactly one handler.
// It returns a non-empty stop reason when the loop must end.
func (e *Engine[S]) turn(ctx context.Context) (string, error) {
	line, err := e.source.NextLine(ctx)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return ReasonEOF, nil
		case errors.Is(err, ports.ErrNoLine):
			e.logger.Debug("input skipped", "session_id", e.sessionID, "err", err)
			return "", nil
		case ctx.Err() != nil:
			return ReasonCanceled, ctx.Err()
		default:
			return ReasonInputError, fmt.Errorf("input error: %w", err)
		}
	}

	input := strings.TrimSpace(line)
	fmt.Fprintln(e.output, e.separator)

	current := e.state.CurrentScenario()

	// Global commands pre-empt the active scenario.
	if command, ok := e.commands.Lookup(input); ok {
		outcome := command.Execute(ctx, e.state)
		e.logger.Debug("command dispatch", "session_id", e.sessionID, "scenario", current, "command", input, "outcome", outcome.String())
		if e.hooks.OnCommand != nil {
			e.hooks.OnCommand(ctx, &domain.DispatchEvent{
				EventBase: e.event(domain.EventCommand),
				Scenario:  current,
				Command:   input,
				Outcome:   outcome,
			})
		}
		return e.apply(ctx, outcome)
	}

	scenario, ok := e.scenarios.Lookup(current)
	if !ok {
		return ReasonConfigError, &domain.ScenarioNotFoundError{Name: current}
	}

	outcome := scenario.OnInput(ctx, input, e.state)
	e.logger.Debug("scenario input", "session_id", e.sessionID, "scenario", current, "outcome", outcome.String())
	if e.hooks.OnInput != nil {
		e.hooks.OnInput(ctx, &domain.DispatchEvent{
			EventBase: e.event(domain.EventInput),
			Scenario:  current,
			Input:     input,
			Outcome:   outcome,
		})
	}
	return e.apply(ctx, outcome)
}

// apply acts on the outcome of a turn's handler.
func (e *Engine[S]) apply(ctx context.Context, outcome domain.Outcome) (string, error) {
	switch outcome.Kind() {
	case domain.OutcomeTransition:
		return e.load(ctx, outcome.Target())
	case domain.OutcomeTerminate:
		return ReasonTerminate, nil
	default:
		return "", nil
	}
}
