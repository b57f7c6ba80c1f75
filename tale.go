package tale

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/aretw0/tale/internal/runtime"
	"github.com/aretw0/tale/pkg/adapters/text"
	"github.com/aretw0/tale/pkg/domain"
	"github.com/aretw0/tale/pkg/ports"
)

// Version is the library version.
const Version = "0.3.0"

// Engine is the high-level entry point for the Tale library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine[S domain.State] struct {
	runtime   *runtime.Engine[S]
	SessionID string
}

type options struct {
	input       ports.LineSource
	output      io.Writer
	separator   string
	entry       string
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	sessionID   string
	runtimeOpts []runtime.EngineOption
}

// Option defines a functional option for configuring the Engine.
type Option func(*options)

// WithInput sets the line source. Defaults to a text source on Stdin.
func WithInput(src ports.LineSource) Option {
	return func(o *options) {
		o.input = src
	}
}

// WithOutput sets where the turn separator is written. Defaults to Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithSeparator sets the line written after every input line (default: blank line).
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// WithEntryScenario configures the initial scenario (default: "start").
func WithEntryScenario(name string) Option {
	return func(o *options) {
		o.entry = name
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSessionID overrides the generated session identifier used in logs and events.
func WithSessionID(id string) Option {
	return func(o *options) {
		o.sessionID = id
	}
}

// WithMaxRedirects bounds on-enter redirect chains (default 64, 0 disables the bound).
func WithMaxRedirects(n int) Option {
	return func(o *options) {
		o.runtimeOpts = append(o.runtimeOpts, runtime.WithMaxRedirects(n))
	}
}

// New initializes a new Tale Engine around the caller's state.
// The state stays owned by the caller; the engine lends it to one handler at a time.
func New[S domain.State](state S, opts ...Option) *Engine[S] {
	o := &options{
		output: os.Stdout,
		entry:  domain.StartScenario,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.input == nil {
		o.input = text.NewSource(os.Stdin, os.Stdout)
	}
	if o.sessionID == "" {
		o.sessionID = uuid.NewString()
	}
	// Ensure logger is initialized (so we don't pass nil to runtime)
	if o.logger == nil {
		o.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithOutput(o.output),
		runtime.WithSeparator(o.separator),
		runtime.WithEntryScenario(o.entry),
		runtime.WithLifecycleHooks(o.hooks),
		runtime.WithLogger(o.logger),
		runtime.WithSessionID(o.sessionID),
	}
	runtimeOpts = append(runtimeOpts, o.runtimeOpts...)

	return &Engine[S]{
		runtime:   runtime.NewEngine(state, o.input, runtimeOpts...),
		SessionID: o.sessionID,
	}
}

// RegisterScenario adds a scenario under name. The last registration for a name wins.
// It returns an error once Start has been called.
func (e *Engine[S]) RegisterScenario(name string, scenario domain.Scenario[S]) error {
	return e.runtime.RegisterScenario(name, scenario)
}

// RegisterCommand adds a global command matched against the exact (trimmed) input.
// It returns an error once Start has been called.
func (e *Engine[S]) RegisterCommand(name string, command domain.Command[S]) error {
	return e.runtime.RegisterCommand(name, command)
}

// Start loads the entry scenario and blocks running turns until the engine stops.
// It returns nil on end of input or a Terminate outcome, a *domain.ScenarioNotFoundError
// for transitions to unregistered scenarios, and ctx.Err() on cancellation.
func (e *Engine[S]) Start(ctx context.Context) error {
	return e.runtime.Start(ctx)
}

// Status returns "uninitialized", "active" or "stopped".
func (e *Engine[S]) Status() string {
	return e.runtime.Status().String()
}

// Current returns the active scenario name.
func (e *Engine[S]) Current() string {
	return e.runtime.Current()
}

// State returns the session state.
func (e *Engine[S]) State() S {
	return e.runtime.State()
}

// Scenarios lists the registered scenario names.
func (e *Engine[S]) Scenarios() []string {
	return e.runtime.Scenarios()
}

// Commands lists the registered command names.
func (e *Engine[S]) Commands() []string {
	return e.runtime.Commands()
}

var _ ports.Engine[*domain.BasicState] = (*Engine[*domain.BasicState])(nil)
