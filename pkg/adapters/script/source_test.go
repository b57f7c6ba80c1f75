package script_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aretw0/tale/pkg/adapters/script"
	"github.com/aretw0/tale/pkg/ports"
	"github.com/aretw0/tale/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ReplaysThenEOF(t *testing.T) {
	ctx := context.Background()
	src := script.New([]string{"hello", script.NoLine, "next"})

	line, err := src.NextLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	_, err = src.NextLine(ctx)
	assert.ErrorIs(t, err, ports.ErrNoLine)

	line, err = src.NextLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "next", line)
	assert.Equal(t, 0, src.Remaining())

	_, err = src.NextLine(ctx)
	assert.ErrorIs(t, err, io.EOF)

	// EOF is sticky.
	_, err = src.NextLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_Echo(t *testing.T) {
	var out bytes.Buffer
	src := script.New([]string{"look", "go north"}, script.WithEcho(&out, "> "))

	for range 2 {
		_, err := src.NextLine(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, "> look\n> go north\n", out.String())
}

func TestSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := script.New([]string{"never"})
	_, err := src.NextLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, src.Remaining())
}

func TestSource_Contract(t *testing.T) {
	tests.LineSourceContractTest(t, func(lines []string) ports.LineSource {
		return script.New(lines)
	})
}
