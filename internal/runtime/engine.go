package runtime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/tale/pkg/domain"
	"github.com/aretw0/tale/pkg/ports"
	"github.com/aretw0/tale/pkg/registry"
)

// ErrAlreadyStarted is returned when Start is called more than once.
var ErrAlreadyStarted = errors.New("engine already started")

// DefaultMaxRedirects bounds the number of on-enter redirects a single load may follow.
const DefaultMaxRedirects = 64

// Status is the lifecycle stage of an Engine.
type Status int

const (
	StatusUninitialized Status = iota
	StatusActive
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusActive:
		return "active"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stop reasons reported to logs and hooks.
const (
	ReasonEOF         = "eof"
	ReasonTerminate   = "terminate"
	ReasonCanceled    = "canceled"
	ReasonConfigError = "config_error"
	ReasonInputError  = "input_error"
)

// Engine is the core scenario dispatcher.
// It owns the session state and both registries, and lends the state to
// exactly one handler at a time.
type Engine[S domain.State] struct {
	state     S
	source    ports.LineSource
	scenarios *registry.Registry[domain.Scenario[S]]
	commands  *registry.Registry[domain.Command[S]]

	output       io.Writer
	separator    string
	entry        string
	maxRedirects int
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	sessionID    string

	status Status
}

type settings struct {
	output       io.Writer
	separator    string
	entry        string
	maxRedirects int
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	sessionID    string
}

// EngineOption configures an Engine.
type EngineOption func(*settings)

// WithOutput sets where the engine writes its turn separator.
func WithOutput(w io.Writer) EngineOption {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithSeparator sets the line written after each input line is read.
func WithSeparator(sep string) EngineOption {
	return func(s *settings) {
		s.separator = sep
	}
}

// WithEntryScenario configures the initial scenario (default: "start").
func WithEntryScenario(name string) EngineOption {
	return func(s *settings) {
		if name != "" {
			s.entry = name
		}
	}
}

// WithMaxRedirects bounds on-enter redirect chains. Zero disables the bound.
func WithMaxRedirects(n int) EngineOption {
	return func(s *settings) {
		if n >= 0 {
			s.maxRedirects = n
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSessionID labels logs and events with an identifier.
func WithSessionID(id string) EngineOption {
	return func(s *settings) {
		s.sessionID = id
	}
}

// NewEngine creates an engine around state, reading turns from source.
func NewEngine[S domain.State](state S, source ports.LineSource, opts ...EngineOption) *Engine[S] {
	cfg := settings{
		output:       io.Discard,
		entry:        domain.StartScenario,
		maxRedirects: DefaultMaxRedirects,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[S]{
		state:        state,
		source:       source,
		scenarios:    registry.New[domain.Scenario[S]]("scenario"),
		commands:     registry.New[domain.Command[S]]("command"),
		output:       cfg.output,
		separator:    cfg.separator,
		entry:        cfg.entry,
		maxRedirects: cfg.maxRedirects,
		hooks:        cfg.hooks,
		logger:       cfg.logger,
		sessionID:    cfg.sessionID,
	}
}

// RegisterScenario adds a scenario. Re-registering a name replaces the handler.
// Registrations are rejected once Start was called.
func (e *Engine[S]) RegisterScenario(name string, scenario domain.Scenario[S]) error {
	return e.scenarios.Register(name, scenario)
}

// RegisterCommand adds a global command. Re-registering a name replaces the handler.
// Registrations are rejected once Start was called.
func (e *Engine[S]) RegisterCommand(name string, command domain.Command[S]) error {
	return e.commands.Register(name, command)
}

// Status returns the lifecycle stage.
func (e *Engine[S]) Status() Status {
	return e.status
}

// State returns the session state. Hosts may inspect it after Start returns.
func (e *Engine[S]) State() S {
	return e.state
}

// Current returns the active scenario name.
func (e *Engine[S]) Current() string {
	return e.state.CurrentScenario()
}

// Scenarios returns the registered scenario names.
func (e *Engine[S]) Scenarios() []string {
	return e.scenarios.Names()
}

// Commands returns the registered command names.
func (e *Engine[S]) Commands() []string {
	return e.commands.Names()
}

// Start loads the entry scenario and runs the read-dispatch-transition loop
// until the input ends, a handler terminates, the context is cancelled or a
// configuration error occurs. Only configuration, input and cancellation
// failures are returned as errors.
func (e *Engine[S]) Start(ctx context.Context) error {
	if e.status != StatusUninitialized {
		return ErrAlreadyStarted
	}
	e.scenarios.Seal()
	e.commands.Seal()
	e.status = StatusActive

	e.logger.Debug("engine start",
		"session_id", e.sessionID,
		"entry", e.entry,
		"scenarios", e.scenarios.Len(),
		"commands", e.commands.Len(),
	)

	if reason, err := e.load(ctx, e.entry); reason != "" {
		return e.stop(ctx, reason, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return e.stop(ctx, ReasonCanceled, err)
		}
		if reason, err := e.turn(ctx); reason != "" {
			return e.stop(ctx, reason, err)
		}
	}
}

func (e *Engine[S]) stop(ctx context.Context, reason string, err error) error {
	e.status = StatusStopped

	current := e.state.CurrentScenario()
	if err != nil {
		e.logger.Error("engine stopped", "session_id", e.sessionID, "scenario", current, "reason", reason, "err", err)
	} else {
		e.logger.Debug("engine stopped", "session_id", e.sessionID, "scenario", current, "reason", reason)
	}

	if e.hooks.OnStop != nil {
		e.hooks.OnStop(ctx, &domain.StopEvent{
			EventBase: e.event(domain.EventStop),
			Scenario:  current,
			Reason:    reason,
			Err:       err,
		})
	}
	return err
}

func (e *Engine[S]) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		SessionID: e.sessionID,
	}
}
