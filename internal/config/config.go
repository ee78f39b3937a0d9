package config

import "fmt"

// Config holds all Quill settings.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Script  ScriptConfig  `toml:"script" yaml:"script"`
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
}

// HistoryConfig configures document undo history.
type HistoryConfig struct {
	// MaxEntries caps retained snapshots; 0 means unbounded.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`

	// NoopSnapshots records a snapshot even for edits that cannot
	// change the text, matching the one-snapshot-per-call contract.
	NoopSnapshots bool `toml:"noop_snapshots" yaml:"noop_snapshots"`
}

// ScriptConfig configures Lua script execution.
type ScriptConfig struct {
	// TimeoutSeconds bounds a script run; 0 means no timeout.
	TimeoutSeconds int `toml:"timeout_seconds" yaml:"timeout_seconds"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		History: HistoryConfig{
			MaxEntries:    0,
			NoopSnapshots: true,
		},
		Script: ScriptConfig{TimeoutSeconds: 5},
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.Logging.Level)
	}

	if c.History.MaxEntries < 0 {
		return fmt.Errorf("history.max_entries must not be negative, got %d", c.History.MaxEntries)
	}

	if c.Script.TimeoutSeconds < 0 {
		return fmt.Errorf("script.timeout_seconds must not be negative, got %d", c.Script.TimeoutSeconds)
	}

	return nil
}
