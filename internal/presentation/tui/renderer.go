package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width cannot be detected.
const DefaultWidth = 80

// Renderer turns scenario text into terminal output.
type Renderer func(string) (string, error)

// NewMarkdownRenderer returns a renderer using glamour with automatic light/dark styling.
// It falls back to plain wrapping if glamour cannot be initialized.
func NewMarkdownRenderer(width int) Renderer {
	width = resolveWidth(width)
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return NewPlainRenderer(width)
	}

	return func(markdown string) (string, error) {
		out, err := r.Render(markdown)
		if err != nil {
			return "", err
		}
		return strings.Trim(out, "\n"), nil
	}
}

// NewPlainRenderer returns a renderer that only word-wraps text.
func NewPlainRenderer(width int) Renderer {
	width = resolveWidth(width)
	return func(text string) (string, error) {
		return wordwrap.String(strings.TrimSpace(text), width), nil
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	if w, _, err := term.GetSize(0); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
