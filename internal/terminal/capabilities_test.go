package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNotATerminal = errors.New("not a terminal")

// newTestCapabilities builds capabilities over a fixed environment and a
// fake terminal so tests never depend on the real process state.
func newTestCapabilities(options Options, env map[string]string, tty bool, width int) *DefaultCapabilities {
	return &DefaultCapabilities{
		options: options,
		lookupEnv: func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		},
		isTerminal: func(int) bool { return tty },
		getSize: func(int) (int, int, error) {
			if width <= 0 {
				return 0, 0, errNotATerminal
			}
			return width, 24, nil
		},
		stdoutFd: 1,
		stderrFd: 2,
	}
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		name            string
		env             map[string]string
		options         Options
		tty             bool
		wantInteractive bool
	}{
		{name: "terminal without CI", tty: true, wantInteractive: true},
		{name: "pipe without CI", tty: false, wantInteractive: false},
		{name: "GITHUB_ACTIONS", env: map[string]string{"GITHUB_ACTIONS": "true"}, tty: true, wantInteractive: false},
		{name: "CI=true", env: map[string]string{"CI": "true"}, tty: true, wantInteractive: false},
		{name: "CI=false is not CI", env: map[string]string{"CI": "false"}, tty: true, wantInteractive: true},
		{name: "CI=0 is not CI", env: map[string]string{"CI": "0"}, tty: true, wantInteractive: true},
		{name: "JENKINS_URL", env: map[string]string{"JENKINS_URL": "http://jenkins.example.com"}, tty: true, wantInteractive: false},
		{name: "force interactive overrides CI", env: map[string]string{"CI": "true"}, options: Options{ForceInteractive: true}, wantInteractive: true},
		{name: "force non-interactive", options: Options{ForceNonInteractive: true}, tty: true, wantInteractive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCapabilities(tt.options, tt.env, tt.tty, 0)
			assert.Equal(t, tt.wantInteractive, c.IsInteractive())
		})
	}
}

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		options   Options
		tty       bool
		wantColor bool
	}{
		{name: "interactive xterm", env: map[string]string{"TERM": "xterm-256color"}, tty: true, wantColor: true},
		{name: "interactive dumb terminal", env: map[string]string{"TERM": "dumb"}, tty: true, wantColor: false},
		{name: "interactive unknown terminal", env: map[string]string{"TERM": "mystery"}, tty: true, wantColor: false},
		{name: "pipe", env: map[string]string{"TERM": "xterm"}, tty: false, wantColor: false},
		{name: "NO_COLOR empty value", env: map[string]string{"TERM": "xterm", "NO_COLOR": ""}, tty: true, wantColor: false},
		{name: "CLICOLOR_FORCE on a pipe", env: map[string]string{"CLICOLOR_FORCE": "1"}, tty: false, wantColor: true},
		{name: "CLICOLOR_FORCE beats NO_COLOR", env: map[string]string{"CLICOLOR_FORCE": "yes", "NO_COLOR": "1"}, wantColor: true},
		{name: "CLICOLOR=0 in a terminal", env: map[string]string{"TERM": "xterm", "CLICOLOR": "0"}, tty: true, wantColor: false},
		{name: "force color", options: Options{ForceColor: true}, wantColor: true},
		{name: "disable color", env: map[string]string{"TERM": "xterm"}, options: Options{DisableColor: true}, tty: true, wantColor: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCapabilities(tt.options, tt.env, tt.tty, 0)
			assert.Equal(t, tt.wantColor, c.SupportsColor())
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		tty   bool
		size  int
		width int
	}{
		{name: "terminal size", tty: true, size: 132, width: 132},
		{name: "not a terminal", tty: false, size: 132, width: DefaultWidth},
		{name: "size unavailable", tty: true, size: 0, width: DefaultWidth},
		{name: "COLUMNS override", env: map[string]string{"COLUMNS": "40"}, tty: true, size: 132, width: 40},
		{name: "invalid COLUMNS", env: map[string]string{"COLUMNS": "wide"}, tty: false, width: DefaultWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCapabilities(Options{}, tt.env, tt.tty, tt.size)
			assert.Equal(t, tt.width, c.Width())
		})
	}
}
