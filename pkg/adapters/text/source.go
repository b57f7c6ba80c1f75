// Package text implements a LineSource for interactive terminals and
// other line-oriented readers.
package text

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/aretw0/tale/pkg/ports"
)

// DefaultPrompt is written before every read.
const DefaultPrompt = "\n> "

// readBackoff throttles retries after non-EOF read failures.
const readBackoff = 50 * time.Millisecond

// maxReadErrors is the number of consecutive read failures after which the
// reader is treated as closed.
const maxReadErrors = 3

// Source reads one line per call from an io.Reader.
// Reads happen on a pump goroutine so a blocked read can be abandoned when
// the context is cancelled; the goroutine never touches session state.
type Source struct {
	reader      *bufio.Reader
	writer      io.Writer
	prompt      string
	interactive bool

	lines     chan readResult
	startOnce sync.Once
}

type readResult struct {
	text string
	err  error
}

// Option configures a Source.
type Option func(*Source)

// WithPrompt overrides the prompt written before each read. An empty prompt disables it.
func WithPrompt(prompt string) Option {
	return func(s *Source) {
		s.prompt = prompt
	}
}

// NewSource creates a source reading from r and writing prompts and input
// errors to w. Nil arguments default to os.Stdin and os.Stdout.
func NewSource(r io.Reader, w io.Writer, opts ...Option) *Source {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	s := &Source{
		reader:      bufio.NewReader(r),
		writer:      w,
		prompt:      DefaultPrompt,
		interactive: IsTerminal(r),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interactive reports whether the source reads from a terminal.
func (s *Source) Interactive() bool {
	return s.interactive
}

// NextLine prompts and blocks until a line is read.
// Rejected or unreadable input yields ports.ErrNoLine; a closed stream, or a
// reader that keeps failing, yields io.EOF.
func (s *Source) NextLine(ctx context.Context) (string, error) {
	s.initPump()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		if s.prompt != "" {
			fmt.Fprint(s.writer, s.prompt)
		}
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", fmt.Errorf("%w: %v", ports.ErrNoLine, res.err)
		}
		clean, err := Sanitize(strings.TrimSpace(res.text))
		if err != nil {
			fmt.Fprintf(s.writer, "Error: %v. Please try again.\n", err)
			return "", fmt.Errorf("%w: %v", ports.ErrNoLine, err)
		}
		return clean, nil
	}
}

func (s *Source) initPump() {
	s.startOnce.Do(func() {
		s.lines = make(chan readResult)
		go s.pump()
	})
}

func (s *Source) pump() {
	defer close(s.lines)

	failures := 0
	for {
		text, err := s.reader.ReadString('\n')

		// A final line without a trailing newline still counts.
		if text != "" {
			failures = 0
			s.lines <- readResult{text: text}
		}

		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			return
		}

		failures++
		if failures >= maxReadErrors {
			return
		}
		s.lines <- readResult{err: err}
		time.Sleep(readBackoff)
	}
}

// IsTerminal reports whether r is a file attached to a terminal.
func IsTerminal(r any) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
