package text_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/tale/pkg/adapters/text"
	"github.com/aretw0/tale/pkg/ports"
	"github.com/aretw0/tale/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ReadsTrimmedLines(t *testing.T) {
	var out bytes.Buffer
	src := text.NewSource(strings.NewReader("  look around \nlast"), &out)
	ctx := context.Background()

	line, err := src.NextLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "look around", line)

	// Final line without newline.
	line, err = src.NextLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = src.NextLine(ctx)
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, strings.Repeat(text.DefaultPrompt, 3), out.String())
	assert.False(t, src.Interactive())
}

func TestSource_CustomPrompt(t *testing.T) {
	var out bytes.Buffer
	src := text.NewSource(strings.NewReader("a\n"), &out, text.WithPrompt("? "))

	_, err := src.NextLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "? ", out.String())
}

func TestSource_EmptyPrompt(t *testing.T) {
	var out bytes.Buffer
	src := text.NewSource(strings.NewReader("a\n"), &out, text.WithPrompt(""))

	_, err := src.NextLine(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestSource_RejectedInputIsNoLine(t *testing.T) {
	t.Setenv(text.EnvMaxInputSize, "4")

	var out bytes.Buffer
	src := text.NewSource(strings.NewReader("too long\nok\n"), &out, text.WithPrompt(""))
	ctx := context.Background()

	_, err := src.NextLine(ctx)
	assert.ErrorIs(t, err, ports.ErrNoLine)
	assert.Contains(t, out.String(), "Please try again")

	line, err := src.NextLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", line)
}

type flakyReader struct {
	calls int
}

func (r *flakyReader) Read(p []byte) (int, error) {
	r.calls++
	switch r.calls {
	case 1:
		return 0, errors.New("hiccup")
	case 2:
		return copy(p, "look\n"), nil
	default:
		return 0, io.EOF
	}
}

func TestSource_TransientReadErrorIsNoLine(t *testing.T) {
	src := text.NewSource(&flakyReader{}, io.Discard)
	ctx := context.Background()

	_, err := src.NextLine(ctx)
	assert.ErrorIs(t, err, ports.ErrNoLine)
	assert.Contains(t, err.Error(), "hiccup")

	line, err := src.NextLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "look", line)

	_, err = src.NextLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestSource_PersistentReadErrorEndsInput(t *testing.T) {
	src := text.NewSource(failingReader{err: errors.New("input/output error")}, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var soft int
	for {
		_, err := src.NextLine(ctx)
		if errors.Is(err, ports.ErrNoLine) {
			soft++
			continue
		}
		require.ErrorIs(t, err, io.EOF)
		break
	}
	assert.Less(t, soft, 3)
}

func TestSource_ClosedReaderEndsInput(t *testing.T) {
	src := text.NewSource(failingReader{err: os.ErrClosed}, io.Discard)

	_, err := src.NextLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	src := text.NewSource(pr, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := src.NextLine(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSource_Contract(t *testing.T) {
	tests.LineSourceContractTest(t, func(lines []string) ports.LineSource {
		return text.NewSource(strings.NewReader(strings.Join(lines, "\n")), io.Discard, text.WithPrompt(""))
	})
}
