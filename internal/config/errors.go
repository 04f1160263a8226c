package config

import (
	"errors"
	"fmt"
)

// Error definitions for the config package
var (
	// ErrInvalidConfig is returned when the configuration fails validation
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParseConfig is returned when the TOML content cannot be decoded
	ErrParseConfig = errors.New("failed to parse config")
)

// FieldError describes a single invalid configuration field.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

// Is lets errors.Is match ErrInvalidConfig.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidConfig
}
