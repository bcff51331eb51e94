// Package config holds the runtime configuration for the CLI, loaded from
// defaults, an optional YAML file, and environment overrides.
package config

import (
	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"github.com/achuchra/ts-types-from-strapi/internal/errors"
)

// Config is the resolved configuration for a run.
type Config struct {
	// Filter is a glob restricting which interfaces are emitted.
	// Empty emits everything.
	Filter string       `mapstructure:"filter"`
	Watch  WatchConfig  `mapstructure:"watch"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// DebounceMS is the quiet period after a file event before the
	// transform reruns.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// LogConfig controls the structured debug log.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig controls how the destination file is written.
type OutputConfig struct {
	TrailingNewline bool `mapstructure:"trailing_newline"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Filter: "",
		Watch:  WatchConfig{DebounceMS: 500},
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{TrailingNewline: true},
	}
}

// Validate checks value ranges and compilability of the configured values.
func Validate(cfg *Config) error {
	if cfg.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", cfg.Watch.DebounceMS)
	}
	if cfg.Filter != "" {
		if _, err := glob.Compile(cfg.Filter); err != nil {
			return errors.Wrapf(err, "invalid filter %q", cfg.Filter)
		}
	}
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.Log.Level)
	}
	return nil
}

// CompileFilter returns the compiled filter glob, or nil when unset.
func (c *Config) CompileFilter() (glob.Glob, error) {
	if c.Filter == "" {
		return nil, nil
	}
	return glob.Compile(c.Filter)
}
