package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/isseis/go-pathtoken/internal/terminal"
)

// schemaVersion identifies the layout of the JSON run log.
const schemaVersion = 1

// LoggerConfig holds all configuration for logger setup
type LoggerConfig struct {
	Level    slog.Level
	LogDir   string // optional; no run log when empty
	RunID    string // generated when empty
	Disabled bool   // discard everything, for --no-logging

	// ConsoleWriter receives plain text output in non-interactive sessions
	// (stderr by default). InteractiveWriter receives the compact coloured
	// output when the session is interactive (stderr by default).
	ConsoleWriter     io.Writer
	InteractiveWriter io.Writer

	Terminal terminal.Options
	// Capabilities overrides terminal detection when set.
	Capabilities terminal.Capabilities
}

// Logger is a configured slog.Logger plus the run log it may own.
type Logger struct {
	*slog.Logger
	RunID   string
	LogPath string
	closer  io.Closer
}

// Close flushes and closes the run log, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// Setup builds the handler chain described by config. It does not install
// the logger as the slog default; callers decide that.
func Setup(config LoggerConfig) (*Logger, error) {
	runID := config.RunID
	if runID == "" {
		runID = GenerateRunID()
	}
	if config.Disabled {
		return &Logger{Logger: slog.New(slog.DiscardHandler), RunID: runID}, nil
	}

	capabilities := config.Capabilities
	if capabilities == nil {
		capabilities = terminal.NewCapabilities(config.Terminal)
	}

	var handlers []slog.Handler

	interactiveWriter := config.InteractiveWriter
	if interactiveWriter == nil {
		interactiveWriter = os.Stderr
	}
	interactiveHandler, err := NewInteractiveHandler(InteractiveHandlerOptions{
		Level:        config.Level,
		Writer:       interactiveWriter,
		Capabilities: capabilities,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create interactive handler: %w", err)
	}
	handlers = append(handlers, interactiveHandler)

	consoleWriter := config.ConsoleWriter
	if consoleWriter == nil {
		consoleWriter = os.Stderr
	}
	textHandler, err := NewConditionalTextHandler(ConditionalTextHandlerOptions{
		TextHandlerOptions: &slog.HandlerOptions{Level: config.Level},
		Writer:             consoleWriter,
		Capabilities:       capabilities,
		PathKeys:           DefaultPathKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create conditional text handler: %w", err)
	}
	handlers = append(handlers, textHandler)

	logger := &Logger{RunID: runID}
	if config.LogDir != "" {
		if err := ValidateLogDir(config.LogDir); err != nil {
			return nil, fmt.Errorf("invalid log directory: %w", err)
		}
		file, path, err := NewSafeFileOpener().OpenRunLog(config.LogDir, runID)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		jsonHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level:       config.Level,
			ReplaceAttr: PathTokenReplacer(DefaultPathKeys),
		}).
			WithAttrs([]slog.Attr{
				slog.String("hostname", Hostname()),
				slog.Int("pid", os.Getpid()),
				slog.Int("schema_version", schemaVersion),
				slog.String("run_id", runID),
			})
		handlers = append(handlers, jsonHandler)
		logger.LogPath = path
		logger.closer = file
	}

	logger.Logger = slog.New(NewMultiHandler(handlers...))
	return logger, nil
}

// ErrInvalidLogLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ParseLevel parses "debug", "info", "warn" or "error" (any case, with
// optional offsets such as "warn+1"). An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
	return level, nil
}
