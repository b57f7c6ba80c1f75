package runtime

import (
	"context"

	"github.com/aretw0/tale/pkg/domain"
)

// load runs the load sequence for name: lookup, on-enter, commit.
// Redirects returned by on-enter are followed until a scenario settles.
// Loading the active scenario again is a full reload.
func (e *Engine[S]) load(ctx context.Context, name string) (string, error) {
	var chain []string

	for {
		scenario, ok := e.scenarios.Lookup(name)
		if !ok {
			return ReasonConfigError, &domain.ScenarioNotFoundError{
				Name: name,
				From: e.state.CurrentScenario(),
			}
		}

		chain = append(chain, name)
		if e.maxRedirects > 0 && len(chain)-1 > e.maxRedirects {
			return ReasonConfigError, &domain.RedirectLoopError{Chain: chain, Limit: e.maxRedirects}
		}

		from := e.state.CurrentScenario()
		e.state.SetPendingTransition(name)

		e.logger.Debug("scenario enter", "session_id", e.sessionID, "scenario", name, "from", from)
		if e.hooks.OnScenarioEnter != nil {
			e.hooks.OnScenarioEnter(ctx, &domain.ScenarioEvent{
				EventBase: e.event(domain.EventScenarioEnter),
				Scenario:  name,
				From:      from,
			})
		}

		outcome := scenario.OnEnter(ctx, e.state)
		e.state.CommitTransition()

		e.logger.Debug("scenario commit", "session_id", e.sessionID, "scenario", name, "outcome", outcome.String())
		if e.hooks.OnScenarioCommit != nil {
			e.hooks.OnScenarioCommit(ctx, &domain.ScenarioEvent{
				EventBase: e.event(domain.EventScenarioCommit),
				Scenario:  name,
				From:      from,
				Outcome:   outcome,
			})
		}

		switch outcome.Kind() {
		case domain.OutcomeTransition:
			name = outcome.Target()
		case domain.OutcomeTerminate:
			return ReasonTerminate, nil
		default:
			return "", nil
		}
	}
}
