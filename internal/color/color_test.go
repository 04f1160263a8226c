package color

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColor(t *testing.T) {
	assert.Equal(t, "\033[35mX\033[0m", NewColor("\033[35m")("X"))
}

func TestPredefinedColors(t *testing.T) {
	tests := []struct {
		name      string
		colorFunc Color
		expected  string
	}{
		{"Gray", Gray, "\033[90mtext\033[0m"},
		{"Green", Green, "\033[32mtext\033[0m"},
		{"Yellow", Yellow, "\033[33mtext\033[0m"},
		{"Red", Red, "\033[31mtext\033[0m"},
		{"Cyan", Cyan, "\033[36mtext\033[0m"},
		{"Plain", Plain, "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.colorFunc("text"))
		})
	}
}

func TestForLevel(t *testing.T) {
	tests := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, Gray("L")},
		{slog.LevelInfo, Cyan("L")},
		{slog.LevelWarn, Yellow("L")},
		{slog.LevelWarn + 2, Yellow("L")},
		{slog.LevelError, Red("L")},
		{slog.LevelError + 4, Red("L")},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, ForLevel(tt.level)("L"))
		})
	}
}
