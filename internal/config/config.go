// Package config loads the settings of the tale command line host.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tale/internal/logging"
	"github.com/aretw0/tale/pkg/adapters/text"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "tale.yaml"

// Config holds host settings. Fields can be set in YAML and overridden by environment variables.
type Config struct {
	Prompt    string `yaml:"prompt" env:"TALE_PROMPT"`
	Separator string `yaml:"separator" env:"TALE_SEPARATOR"`
	LogLevel  string `yaml:"log_level" env:"TALE_LOG_LEVEL"`
	Debug     bool   `yaml:"debug" env:"TALE_DEBUG"`
	// Markdown renders scenario text through glamour instead of plain word wrapping.
	Markdown bool `yaml:"markdown" env:"TALE_MARKDOWN"`
	// Width is the wrap width for plain rendering; 0 picks the terminal width.
	Width   int  `yaml:"width" env:"TALE_WIDTH"`
	Metrics bool `yaml:"metrics" env:"TALE_METRICS"`
	Banner  bool `yaml:"banner" env:"TALE_BANNER"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:    text.DefaultPrompt,
		Separator: "",
		LogLevel:  "info",
		Markdown:  true,
		Width:     0,
		Banner:    true,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (a
// missing file is not an error), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Width < 0 {
		return cfg, fmt.Errorf("invalid width %d: must not be negative", cfg.Width)
	}
	return cfg, nil
}

// Level returns the slog level; Debug forces debug logging.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return logging.ParseLevel(c.LogLevel)
}
