package runtime_test

import (
	"context"

	"github.com/aretw0/tale/internal/runtime"
	"github.com/aretw0/tale/pkg/adapters/script"
	"github.com/aretw0/tale/pkg/domain"
)

type state = *domain.BasicState

// tracer records every handler call in order.
type tracer struct {
	calls []string
}

func (tr *tracer) scenario(name string, onInput func(input string, s state) domain.Outcome) domain.Scenario[state] {
	return domain.ScenarioFuncs[state]{
		Enter: func(ctx context.Context, s state) domain.Outcome {
			tr.calls = append(tr.calls, "enter:"+name)
			return domain.Continue()
		},
		Input: func(ctx context.Context, input string, s state) domain.Outcome {
			tr.calls = append(tr.calls, "input:"+name+":"+input)
			if onInput == nil {
				return domain.Continue()
			}
			return onInput(input, s)
		},
	}
}

func (tr *tracer) command(name string, outcome domain.Outcome) domain.Command[state] {
	return domain.CommandFunc[state](func(ctx context.Context, s state) domain.Outcome {
		tr.calls = append(tr.calls, "command:"+name)
		return outcome
	})
}

func newEngine(lines []string, opts ...runtime.EngineOption) (*runtime.Engine[state], *script.Source) {
	src := script.New(lines)
	return runtime.NewEngine(domain.NewBasicState(), src, opts...), src
}
