package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tale/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tale.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "\n> ", cfg.Prompt)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
prompt: "? "
separator: "---"
log_level: warn
markdown: false
width: 60
metrics: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "? ", cfg.Prompt)
	assert.Equal(t, "---", cfg.Separator)
	assert.False(t, cfg.Markdown)
	assert.Equal(t, 60, cfg.Width)
	assert.True(t, cfg.Metrics)
	assert.True(t, cfg.Banner, "unset keys keep their defaults")
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "prompt: \"? \"\nwidth: 60\n")
	t.Setenv("TALE_PROMPT", ">> ")
	t.Setenv("TALE_DEBUG", "true")
	t.Setenv("TALE_BANNER", "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, 60, cfg.Width)
	assert.False(t, cfg.Banner)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "width: [not a number")
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("TALE_WIDTH", "wide")
	_, err := config.Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestLoad_NegativeWidth(t *testing.T) {
	path := writeFile(t, "width: -1\n")
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "invalid width")
}
