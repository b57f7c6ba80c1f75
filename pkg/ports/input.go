package ports

import (
	"context"
	"errors"
)

// ErrNoLine is returned by a LineSource when no line was available for this
// attempt (e.g. a transient read failure or rejected input). The engine skips
// the turn and asks again. Sources may wrap it with more detail.
var ErrNoLine = errors.New("no line available")

// LineSource is a pull-based, blocking source of input lines.
type LineSource interface {
	// NextLine blocks until one line is available.
	// It returns ErrNoLine for a soft failure and io.EOF once the stream is closed.
	NextLine(ctx context.Context) (string, error)
}

// LineSourceFunc adapts a function to LineSource.
type LineSourceFunc func(ctx context.Context) (string, error)

func (f LineSourceFunc) NextLine(ctx context.Context) (string, error) {
	return f(ctx)
}
