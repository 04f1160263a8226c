// Package main provides the encode command, which turns paths into line-safe
// tokens, one per output line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/isseis/go-pathtoken/internal/cmdcommon"
	"github.com/isseis/go-pathtoken/internal/pathencoding"
)

type encodeConfig struct {
	paths []string
	nul   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printUsage(fs, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	out := bufio.NewWriter(stdout)
	emit := func(path string) error {
		if _, err := out.WriteString(pathencoding.Encode(path)); err != nil {
			return err
		}
		return out.WriteByte('\n')
	}

	if len(cfg.paths) > 0 {
		for _, p := range cfg.paths {
			err = emit(p)
			if err != nil {
				break
			}
		}
	} else {
		err = cmdcommon.ScanRecords(stdin, cfg.nul, emit)
	}
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*encodeConfig, *flag.FlagSet, error) {
	var nul bool

	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.BoolVar(&nul, "0", false, "Read NUL-separated paths from stdin instead of lines")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return &encodeConfig{paths: fs.Args(), nul: nul}, fs, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [<path>...]\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "Without paths, reads one path per line (or per NUL with -0) from stdin.")
	fs.PrintDefaults()
}
