package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Tale banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.Profile

	lines := []struct {
		text  string
		color string
	}{
		{" _____     _      ", "#818cf8"},
		{"|_   _|_ _| | ___ ", "#a78bfa"},
		{"  | |/ _` | |/ _ \\", "#c084fc"},
		{"  | | (_| | |  __/", "#e879f9"},
		{"  |_|\\__,_|_|\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}

// PrintError writes a highlighted diagnostic line to w.
func PrintError(w io.Writer, format string, args ...any) {
	out := termenv.NewOutput(w)
	label := out.String("error:").Foreground(out.Color("#ef4444")).Bold()
	fmt.Fprintf(w, "%s %s\n", label, fmt.Sprintf(format, args...))
}
