package registry_test

import (
	"testing"

	"github.com/aretw0/tale/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := registry.New[string]("scenario")

	require.NoError(t, reg.Register("start", "first"))
	require.NoError(t, reg.Register("end", "second"))

	h, ok := reg.Lookup("start")
	assert.True(t, ok)
	assert.Equal(t, "first", h)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
	assert.True(t, reg.Has("end"))
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_LastWriteWins(t *testing.T) {
	reg := registry.New[string]("command")

	require.NoError(t, reg.Register("exit", "old"))
	require.NoError(t, reg.Register("exit", "new"))

	h, _ := reg.Lookup("exit")
	assert.Equal(t, "new", h)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_Names_Sorted(t *testing.T) {
	reg := registry.New[int]("scenario")
	for i, name := range []string{"vault", "start", "hall"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"hall", "start", "vault"}, reg.Names())
}

func TestRegistry_Sealed(t *testing.T) {
	reg := registry.New[string]("scenario")
	require.NoError(t, reg.Register("start", "a"))

	reg.Seal()
	assert.True(t, reg.Sealed())

	err := reg.Register("late", "b")
	assert.ErrorIs(t, err, registry.ErrSealed)
	assert.Contains(t, err.Error(), `"late"`)
	assert.False(t, reg.Has("late"))

	// Existing entries stay readable.
	h, ok := reg.Lookup("start")
	assert.True(t, ok)
	assert.Equal(t, "a", h)
}

func TestRegistry_EmptyName(t *testing.T) {
	reg := registry.New[string]("command")
	assert.ErrorIs(t, reg.Register("", "x"), registry.ErrEmptyName)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_InvalidRegistrations(t *testing.T) {
	type handler interface{ Run() }

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"Leading Space", " look", registry.ErrPaddedName},
		{"Trailing Space", "look ", registry.ErrPaddedName},
		{"Only Whitespace", "  ", registry.ErrPaddedName},
		{"Nil Handler", "look", registry.ErrNilHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New[handler]("command")
			err := reg.Register(tt.key, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, reg.Len())
		})
	}
}
