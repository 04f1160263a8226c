// Package cmdcommon provides common functionality for command-line tools.
package cmdcommon

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/isseis/go-pathtoken/internal/config"
	"github.com/isseis/go-pathtoken/internal/logging"
	"github.com/isseis/go-pathtoken/internal/paths"
)

// Build-time variables (set via ldflags)
var (
	BuildVersion = "dev"
	GitCommit    = "unknown"
)

// Options are the flags every configurable command shares.
type Options struct {
	ConfigFile string // empty means the well-known location
	NoConfig   bool
	NoLogging  bool
	LogLevel   string // overrides logging.level when set
	LogDir     string // overrides logging.dir when set
}

// Environment is what a command needs after bootstrap.
type Environment struct {
	Paths   paths.WellKnownPaths
	Config  *config.Config
	Logger  *logging.Logger
	MRUFile string
}

// Close releases the run log.
func (e *Environment) Close() error {
	return e.Logger.Close()
}

// wellKnownPaths is replaced in tests.
var wellKnownPaths = paths.NewWellKnownPaths

// Bootstrap resolves well-known paths, loads configuration and sets up
// logging. Console log output goes to stderr.
func Bootstrap(opts Options, stderr io.Writer) (*Environment, error) {
	wkp, err := wellKnownPaths()
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if !opts.NoConfig {
		file := opts.ConfigFile
		if file == "" {
			file = wkp.ConfigFile
		}
		cfg, err = config.NewLoader().Load(paths.ExpandTilde(file, wkp.HomeDir))
		if err != nil {
			return nil, err
		}
	}

	levelName := cfg.Logging.Level
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logDir := cfg.Logging.Dir
	if opts.LogDir != "" {
		logDir = opts.LogDir
	}

	logger, err := logging.Setup(logging.LoggerConfig{
		Level:             level,
		LogDir:            paths.ExpandTilde(logDir, wkp.HomeDir),
		Disabled:          opts.NoLogging,
		ConsoleWriter:     stderr,
		InteractiveWriter: stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	logger.Debug("Starting",
		slog.String("version", BuildVersion),
		slog.String("commit", GitCommit),
		slog.String("run_id", logger.RunID))

	mruFile := wkp.MRUFile
	if cfg.MRU.File != "" {
		mruFile = paths.ExpandTilde(cfg.MRU.File, wkp.HomeDir)
	}

	return &Environment{
		Paths:   wkp,
		Config:  cfg,
		Logger:  logger,
		MRUFile: mruFile,
	}, nil
}
