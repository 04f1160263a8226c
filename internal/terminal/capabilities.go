// Package terminal provides helpers for detecting terminal capabilities and
// determining whether the current process should be treated as interactive
// or running in a CI/non-interactive environment.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Options contains command line overrides for terminal detection
type Options struct {
	ForceInteractive    bool // Force interactive mode regardless of environment
	ForceNonInteractive bool // Force non-interactive mode regardless of environment
	ForceColor          bool // Force color output regardless of environment
	DisableColor        bool // Disable color output regardless of environment
}

// Capabilities provides a unified interface for terminal capability detection
type Capabilities interface {
	IsInteractive() bool
	SupportsColor() bool
	Width() int
}

// DefaultCapabilities implements Capabilities for the process's stdout and
// stderr.
type DefaultCapabilities struct {
	options    Options
	lookupEnv  func(string) (string, bool)
	isTerminal func(fd int) bool
	getSize    func(fd int) (width, height int, err error)
	stdoutFd   int
	stderrFd   int
}

// NewCapabilities creates a new Capabilities instance with the given options
func NewCapabilities(options Options) *DefaultCapabilities {
	return &DefaultCapabilities{
		options:    options,
		lookupEnv:  os.LookupEnv,
		isTerminal: term.IsTerminal,
		getSize:    term.GetSize,
		stdoutFd:   int(os.Stdout.Fd()),
		stderrFd:   int(os.Stderr.Fd()),
	}
}

func (c *DefaultCapabilities) getenv(key string) string {
	value, _ := c.lookupEnv(key)
	return value
}

// isTruthy checks if a string value should be considered "true"
// Supports: "1", "true", "yes" (case insensitive)
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
