package ports

import (
	"context"

	"github.com/aretw0/tale/pkg/domain"
)

// Engine is the host-facing surface of a scenario engine.
type Engine[S domain.State] interface {
	RegisterScenario(name string, scenario domain.Scenario[S]) error
	RegisterCommand(name string, command domain.Command[S]) error

	// Start runs the read-dispatch-transition loop until the engine stops.
	Start(ctx context.Context) error
}
