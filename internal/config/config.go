// Package config loads the optional TOML configuration shared by the
// pathtoken commands.
//
//	[mru]
//	file = "~/.config/pathtoken/mru.txt"
//	max_items = 20
//
//	[logging]
//	level = "info"
//	dir = ""
package config

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/isseis/go-pathtoken/internal/safefileio"
	"github.com/pelletier/go-toml/v2"
)

// Config is the decoded configuration file.
type Config struct {
	MRU     MRUConfig     `toml:"mru"`
	Logging LoggingConfig `toml:"logging"`
}

// MRUConfig configures the recently used directory list.
type MRUConfig struct {
	// File is the list location; may start with "~". Empty means the
	// well-known default.
	File string `toml:"file"`
	// MaxItems caps the list length. Nil until defaults are applied.
	MaxItems *int `toml:"max_items"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

// MaxItemsOrDefault returns mru.max_items, falling back to DefaultMaxItems.
func (c *Config) MaxItemsOrDefault() int {
	if c.MRU.MaxItems == nil {
		return DefaultMaxItems
	}
	return *c.MRU.MaxItems
}

// Loader reads configuration files.
type Loader struct {
	readFile func(string) ([]byte, error)
}

// NewLoader creates a Loader that reads through safefileio.
func NewLoader() *Loader {
	return &Loader{readFile: safefileio.SafeReadFile}
}

// Load reads, decodes and validates the file at path. A missing file yields
// the defaults.
func (l *Loader) Load(path string) (*Config, error) {
	content, err := l.readFile(path)
	if err != nil {
		if safefileio.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML content, applies defaults and validates the result.
// Unknown keys are rejected.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges.
func Validate(cfg *Config) error {
	if n := cfg.MaxItemsOrDefault(); n < MinMaxItems || n > MaxMaxItems {
		return &FieldError{
			Field:  "mru.max_items",
			Value:  n,
			Reason: fmt.Sprintf("must be between %d and %d", MinMaxItems, MaxMaxItems),
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return &FieldError{
			Field:  "logging.level",
			Value:  cfg.Logging.Level,
			Reason: "must be debug, info, warn or error",
		}
	}
	return nil
}
