// Package main provides the pathscan command. It encodes every path below a
// directory (or every path read from stdin), checks that each token decodes
// back to the same path, and reports how many paths needed escaping.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/isseis/go-pathtoken/internal/cmdcommon"
	"github.com/isseis/go-pathtoken/internal/display"
	"github.com/isseis/go-pathtoken/internal/logging"
	"github.com/isseis/go-pathtoken/internal/pathencoding"
)

const defaultProgressInterval = 1000

var errTooManyArgs = errors.New("at most one start directory may be given")

type scanConfig struct {
	root      string
	stdin0    bool
	progress  int
	logLevel  slog.Level
	noLogging bool
}

// escapedPath is a path that needed an escaped token.
type escapedPath struct {
	path  string
	token string
}

type scanner struct {
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
	progress   int
	verbatim   int
	mismatches int
	escaped    []escapedPath
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, flags, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printUsage(flags, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := logging.Setup(logging.LoggerConfig{
		Level:             cfg.logLevel,
		Disabled:          cfg.noLogging,
		ConsoleWriter:     stderr,
		InteractiveWriter: stderr,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Close() }()

	s := &scanner{stdout: stdout, stderr: stderr, logger: logger.Logger, progress: cfg.progress}
	timer := logging.BracketTimer(logger.Logger, slog.LevelInfo, "scan")
	if cfg.stdin0 {
		_, _ = fmt.Fprintln(stdout, "Counting paths read from stdin according to encoding needs.")
		err = cmdcommon.ScanRecords(stdin, true, func(p string) error {
			s.visit(p)
			return nil
		})
	} else {
		_, _ = fmt.Fprintf(stdout, "Counting paths below %s according to encoding needs.\n", display.Printable(cfg.root))
		err = s.walk(cfg.root)
	}
	timer.Stop()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	s.report()
	if s.mismatches > 0 {
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*scanConfig, *flag.FlagSet, error) {
	options := struct {
		stdin0    bool
		progress  int
		logLevel  string
		noLogging bool
	}{}

	flags := flag.NewFlagSet("pathscan", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { printUsage(flags, stderr) }
	flags.BoolVar(&options.stdin0, "stdin0", false, "Read NUL-separated paths from stdin instead of walking a directory")
	flags.IntVar(&options.progress, "progress", defaultProgressInterval, "Print running counts every N paths (0 disables)")
	flags.StringVar(&options.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.BoolVar(&options.noLogging, "no-logging", false, "Disable logging")

	if err := flags.Parse(args); err != nil {
		return nil, flags, err
	}
	level, err := logging.ParseLevel(options.logLevel)
	if err != nil {
		return nil, flags, err
	}

	cfg := &scanConfig{
		stdin0:    options.stdin0,
		progress:  max(options.progress, 0),
		logLevel:  level,
		noLogging: options.noLogging,
	}
	switch rest := flags.Args(); {
	case len(rest) > 1:
		return nil, flags, errTooManyArgs
	case len(rest) == 1:
		cfg.root = rest[0]
	case !cfg.stdin0:
		wd, err := os.Getwd()
		if err != nil {
			return nil, flags, fmt.Errorf("could not determine current directory: %w", err)
		}
		cfg.root = wd
	}
	return cfg, flags, nil
}

func printUsage(flags *flag.FlagSet, w io.Writer) {
	if flags == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [<start-dir>]\n", filepath.Base(os.Args[0]))
	flags.PrintDefaults()
}

// walk visits root and everything below it. Entries that cannot be read
// are logged and skipped.
func (s *scanner) walk(root string) error {
	return filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Warn("Skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		s.visit(path)
		return nil
	})
}

func (s *scanner) visit(path string) {
	result := pathencoding.Analyze(path)
	if !result.Escaped {
		s.verbatim++
	} else {
		s.escaped = append(s.escaped, escapedPath{path: path, token: result.Token})
		s.logger.Debug("Path requires escaping", "path", path, "token", result.Token)
	}

	decoded, err := pathencoding.Decode(result.Token)
	switch {
	case err != nil:
		s.mismatches++
		_, _ = fmt.Fprintf(s.stderr, "Round trip failed for %s: %v\n", display.Printable(path), err)
	case decoded != path:
		s.mismatches++
		_, _ = fmt.Fprintf(s.stderr, "Round trip mismatch for %s: got %s\n", display.Printable(path), display.Printable(decoded))
	}

	if s.progress > 0 && s.total()%s.progress == 0 {
		s.printCounts()
	}
}

func (s *scanner) total() int {
	return s.verbatim + len(s.escaped)
}

func (s *scanner) printCounts() {
	_, _ = fmt.Fprintf(s.stdout, "verbatim=%d escaped=%d\n", s.verbatim, len(s.escaped))
}

func (s *scanner) report() {
	s.printCounts()
	_, _ = fmt.Fprintln(s.stdout, "Counting complete.")

	if len(s.escaped) == 0 {
		return
	}
	percentage := 100 * float64(len(s.escaped)) / float64(s.total())
	_, _ = fmt.Fprintf(s.stdout, "\n%d out of %d paths needed escaping.\n", len(s.escaped), s.total())
	_, _ = fmt.Fprintf(s.stdout, "This represents %.2f%% of the total path count.\n\n", percentage)
	for _, e := range s.escaped {
		_, _ = fmt.Fprintf(s.stdout, "Original path: %s\n", display.Printable(e.path))
		_, _ = fmt.Fprintf(s.stdout, "Encoded form : %s\n", e.token)
	}
}
