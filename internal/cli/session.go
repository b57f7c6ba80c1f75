package cli

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tale"
	"github.com/aretw0/tale/internal/config"
	"github.com/aretw0/tale/internal/presentation/tui"
	"github.com/aretw0/tale/pkg/adapters/text"
	"github.com/aretw0/tale/pkg/domain"
	"github.com/aretw0/tale/pkg/observability"
)

// setupScenarios installs the scenarios and commands of a session.
var setupScenarios = registerAdventure

// RunSession plays the bundled adventure until the input ends, the player
// exits or ctx is cancelled. It returns the scenario the session stopped in.
func RunSession(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) (string, error) {
	logger := createLogger(cfg, errOut)

	source := text.NewSource(in, out, text.WithPrompt(cfg.Prompt))
	if cfg.Banner && source.Interactive() {
		tui.PrintBanner(out, tale.Version)
	}

	render := tui.NewPlainRenderer(cfg.Width)
	if cfg.Markdown {
		render = tui.NewMarkdownRenderer(cfg.Width)
	}

	var hooks domain.LifecycleHooks
	var registry *prometheus.Registry
	if cfg.Metrics {
		registry = prometheus.NewRegistry()
		hooks = hooks.Merge(observability.NewMetrics(registry).Hooks())
	}

	engine := tale.New(newAdventureState(),
		tale.WithInput(source),
		tale.WithOutput(out),
		tale.WithSeparator(cfg.Separator),
		tale.WithLogger(logger),
		tale.WithLifecycleHooks(hooks),
	)
	if err := setupScenarios(engine, &adventure{out: out, render: render}); err != nil {
		return "", err
	}
	logger.Debug("session created", "session_id", engine.SessionID)

	// Errors are reported once, by the caller.
	runErr := engine.Start(ctx)

	if registry != nil {
		if err := observability.WriteText(errOut, registry); err != nil {
			logger.Warn("failed to write metrics", "err", err)
		}
	}

	return engine.Current(), runErr
}
