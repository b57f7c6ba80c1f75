package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/tale/internal/config"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ConfigPath string
	Debug      bool
	Plain      bool
	Metrics    bool

	// Streams default to the process Stdin, Stdout and Stderr.
	Input     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
}

// Execute handles the 'run' command: it loads the configuration, applies flag
// overrides and plays one session.
func Execute(opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.Debug {
		cfg.Debug = true
	}
	if opts.Plain {
		cfg.Markdown = false
	}
	if opts.Metrics {
		cfg.Metrics = true
	}

	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	scenario, runErr := RunSession(sigCtx, cfg, opts.Input, opts.Output, opts.ErrOutput)
	logCompletion(opts.Output, scenario, runErr, sigCtx.Signal())

	return handleExecutionError(runErr)
}
