// Package script provides a LineSource that replays a fixed list of lines.
// It is used by tests and by hosts that drive the engine non-interactively.
package script

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/tale/pkg/ports"
)

// NoLine is a script entry that makes NextLine report ports.ErrNoLine
// instead of returning a line, simulating a transient read failure.
const NoLine = "\x00<no line>"

// Source replays lines in order and then reports io.EOF.
type Source struct {
	lines  []string
	pos    int
	echo   io.Writer
	prompt string
}

// Option configures a Source.
type Option func(*Source)

// WithEcho writes prompt followed by each replayed line to w,
// producing a transcript that looks like an interactive session.
func WithEcho(w io.Writer, prompt string) Option {
	return func(s *Source) {
		s.echo = w
		s.prompt = prompt
	}
}

// New creates a source replaying lines.
func New(lines []string, opts ...Option) *Source {
	s := &Source{lines: append([]string(nil), lines...)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextLine returns the next scripted line.
func (s *Source) NextLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}

	line := s.lines[s.pos]
	s.pos++

	if line == NoLine {
		return "", ports.ErrNoLine
	}
	if s.echo != nil {
		fmt.Fprintf(s.echo, "%s%s\n", s.prompt, line)
	}
	return line, nil
}

// Remaining returns the number of entries not yet consumed.
func (s *Source) Remaining() int {
	return len(s.lines) - s.pos
}
