// Package main provides the decode command, the inverse of encode: it reads
// tokens and writes the paths they stand for.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/isseis/go-pathtoken/internal/cmdcommon"
	"github.com/isseis/go-pathtoken/internal/display"
	"github.com/isseis/go-pathtoken/internal/pathencoding"
)

type decodeConfig struct {
	tokens []string
	nul    bool
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

	terminator := byte('\n')
	if cfg.nul {
		terminator = 0
	}
	out := bufio.NewWriter(stdout)
	failures := 0
	emit := func(token string) error {
		path, err := pathencoding.Decode(strings.TrimSuffix(token, "\r"))
		if err != nil {
			failures++
			_, _ = fmt.Fprintf(stderr, "Error decoding %s: %v\n", display.Printable(token), err)
			return nil
		}
		if _, err := out.WriteString(path); err != nil {
			return err
		}
		return out.WriteByte(terminator)
	}

	if len(cfg.tokens) > 0 {
		for _, token := range cfg.tokens {
			if err = emit(token); err != nil {
				break
			}
		}
	} else {
		// Tokens are always lines; -0 only changes the output terminator.
		err = cmdcommon.ScanRecords(stdin, false, emit)
	}
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if failures > 0 {
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*decodeConfig, *flag.FlagSet, error) {
	var nul bool

	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.BoolVar(&nul, "0", false, "Terminate each decoded path with NUL instead of newline")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return &decodeConfig{tokens: fs.Args(), nul: nul}, fs, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [<token>...]\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "Without tokens, reads one token per line from stdin.")
	fs.PrintDefaults()
}
