// Package workdirs checks the directories named on a command line.
package workdirs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Errors describing why a directory was dropped
var (
	ErrNotExist     = errors.New("directory does not exist")
	ErrNotDirectory = errors.New("path is not a directory")
	ErrNoCurrentDir = errors.New("cannot determine current directory")
)

// DirError reports a dropped entry.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("%s: %s, ignoring", e.Path, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }

// Verify returns the usable directories among dirs in their given order:
// existing directories, made absolute with symlinks resolved, without
// duplicates. When dirs is empty the current directory, as reported by
// cwd, is used. Dropped entries are returned as errors for the caller to
// report; they do not stop the others.
func Verify(dirs []string, cwd func() (string, error)) ([]string, []error) {
	var problems []error
	if len(dirs) == 0 {
		dir, err := cwd()
		if err != nil {
			return nil, []error{fmt.Errorf("%w: %w", ErrNoCurrentDir, err)}
		}
		dirs = []string{dir}
	}

	result := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, os.ErrNotExist):
			problems = append(problems, &DirError{Path: dir, Err: ErrNotExist})
			continue
		case err != nil:
			problems = append(problems, &DirError{Path: dir, Err: err})
			continue
		case !info.IsDir():
			problems = append(problems, &DirError{Path: dir, Err: ErrNotDirectory})
			continue
		}

		canon := canonicalize(dir)
		if !slices.Contains(result, canon) {
			result = append(result, canon)
		}
	}
	return result, problems
}

func canonicalize(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	return dir
}
