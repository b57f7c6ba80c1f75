package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// Entry is one row of a Panel.
type Entry struct {
	Key   string
	Value string
}

// Panel renders a titled, bordered list of key/value rows.
func Panel(title string, entries []Entry) string {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(keyStyle.Render(e.Key + strings.Repeat(" ", width-len(e.Key))))
		if e.Value != "" {
			b.WriteString("  ")
			b.WriteString(e.Value)
		}
	}
	return panelStyle.Render(b.String())
}
