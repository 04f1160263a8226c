//go:build !windows

// Package main provides the awkward command. It creates a directory holding
// one empty file for every single-byte name from 0x01 to 0xFF, which gives
// pathscan something hostile to chew on.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	defaultDir = "awkward"
	dirPerm    = 0o750
	filePerm   = 0o600
)

// skipped names cannot be file names: '/' separates components and '.' is
// the directory itself.
var skipped = map[byte]bool{'/': true, '.': true}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var dir string
	fs := flag.NewFlagSet("awkward", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&dir, "dir", defaultDir, "Directory to create the files in")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	created, failed, err := createFiles(dir)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	for _, b := range failed {
		_, _ = fmt.Fprintf(stderr, "Could not create file for byte 0x%02x\n", b)
	}
	_, _ = fmt.Fprintf(stdout, "Created %d files in %s\n", created, dir)
	if len(failed) > 0 {
		return 1
	}
	return 0
}

// createFiles creates dir if needed and one file per usable byte value. It
// returns how many files exist afterwards and which bytes failed.
func createFiles(dir string) (int, []byte, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return 0, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	created := 0
	var failed []byte
	for i := 1; i <= 0xFF; i++ {
		b := byte(i)
		if skipped[b] {
			continue
		}
		f, err := os.OpenFile(filepath.Join(dir, string([]byte{b})), os.O_CREATE|os.O_WRONLY, filePerm)
		if err != nil {
			failed = append(failed, b)
			continue
		}
		_ = f.Close()
		created++
	}
	return created, failed, nil
}
