package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/tale/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.Outcome
		kind    domain.OutcomeKind
		target  string
		str     string
	}{
		{"Zero", domain.Outcome{}, domain.OutcomeContinue, "", "continue"},
		{"Continue", domain.Continue(), domain.OutcomeContinue, "", "continue"},
		{"Transition", domain.TransitionTo("end"), domain.OutcomeTransition, "end", "transition(end)"},
		{"Terminate", domain.Terminate(), domain.OutcomeTerminate, "", "terminate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.outcome.Kind())
			assert.Equal(t, tt.target, tt.outcome.Target())
			assert.Equal(t, tt.str, tt.outcome.String())
			assert.Equal(t, tt.kind == domain.OutcomeTransition, tt.outcome.IsTransition())
			assert.Equal(t, tt.kind == domain.OutcomeTerminate, tt.outcome.IsTerminate())
		})
	}
}

func TestScenarioFuncs_NilIsContinue(t *testing.T) {
	var sc domain.Scenario[*domain.BasicState] = domain.ScenarioFuncs[*domain.BasicState]{}
	s := domain.NewBasicState()

	assert.Equal(t, domain.Continue(), sc.OnEnter(context.Background(), s))
	assert.Equal(t, domain.Continue(), sc.OnInput(context.Background(), "anything", s))
}

func TestRedirect(t *testing.T) {
	s := domain.NewBasicState()
	sc := domain.Redirect("hall", func(ctx context.Context, s *domain.BasicState) {
		s.SetFlag("loaded", true)
	})

	out := sc.OnEnter(context.Background(), s)
	assert.Equal(t, domain.TransitionTo("hall"), out)
	assert.True(t, s.Flag("loaded"))
	assert.Equal(t, domain.Continue(), sc.OnInput(context.Background(), "x", s))
}

func TestScenarioNotFoundError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &domain.ScenarioNotFoundError{Name: "vault", From: "hall"})

	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
	assert.False(t, errors.Is(err, domain.ErrRedirectLoop))
	assert.Contains(t, err.Error(), `scenario "vault" not found (requested from "hall")`)

	startup := &domain.ScenarioNotFoundError{Name: "start"}
	assert.Equal(t, `scenario "start" not found`, startup.Error())
}

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnStop: func(context.Context, *domain.StopEvent) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnStop:  func(context.Context, *domain.StopEvent) { calls = append(calls, "b") },
		OnInput: func(context.Context, *domain.DispatchEvent) { calls = append(calls, "b-input") },
	}

	merged := a.Merge(b)
	merged.OnStop(context.Background(), &domain.StopEvent{})
	merged.OnInput(context.Background(), &domain.DispatchEvent{})

	assert.Equal(t, []string{"a", "b", "b-input"}, calls)
	assert.Nil(t, merged.OnCommand)
}
