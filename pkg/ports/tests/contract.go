// Package tests holds reusable conformance suites for port implementations.
package tests

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aretw0/tale/pkg/ports"
)

// LineSourceContractTest verifies that an adapter complies with ports.LineSource.
// newSource must return a fresh source that yields lines in order and then ends.
func LineSourceContractTest(t *testing.T, newSource func(lines []string) ports.LineSource) {
	t.Helper()

	lines := []string{"look", "open door", "exit"}

	// 1. Lines come back in order, then io.EOF
	t.Run("NextLine_Order", func(t *testing.T) {
		src := newSource(lines)
		for _, want := range lines {
			got, err := src.NextLine(context.Background())
			if err != nil {
				t.Fatalf("unexpected error reading %q: %v", want, err)
			}
			if got != want {
				t.Errorf("line mismatch. got %q, want %q", got, want)
			}
		}

		if _, err := src.NextLine(context.Background()); !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF after last line, got %v", err)
		}
	})

	// 2. Empty input ends immediately
	t.Run("NextLine_Empty", func(t *testing.T) {
		src := newSource(nil)
		if _, err := src.NextLine(context.Background()); !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF, got %v", err)
		}
	})

	// 3. A cancelled context wins over pending input
	t.Run("NextLine_Cancelled", func(t *testing.T) {
		src := newSource(lines)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := src.NextLine(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}
