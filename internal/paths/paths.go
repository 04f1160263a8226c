// Package paths knows where pathtoken keeps its files and converts paths
// between their on-disk form and the "~"-relative form stored in the MRU
// file.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user configuration directory.
const AppName = "pathtoken"

// Well-known file names inside ConfigDir.
const (
	ConfigFileName = "config.toml"
	MRUFileName    = "mru.txt"
)

// ErrNoHomeDir is returned when the user's home directory cannot be found.
var ErrNoHomeDir = errors.New("cannot determine home directory")

// WellKnownPaths is the set of directories and files the commands refer to.
type WellKnownPaths struct {
	HomeDir    string
	ConfigDir  string
	ConfigFile string
	MRUFile    string
}

// NewWellKnownPaths resolves the paths for the current user.
func NewWellKnownPaths() (WellKnownPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return WellKnownPaths{}, fmt.Errorf("%w: %w", ErrNoHomeDir, err)
	}
	configRoot, err := os.UserConfigDir()
	if err != nil {
		return WellKnownPaths{}, fmt.Errorf("cannot determine config directory: %w", err)
	}
	return newWellKnownPaths(home, configRoot), nil
}

func newWellKnownPaths(home, configRoot string) WellKnownPaths {
	configDir := filepath.Join(configRoot, AppName)
	return WellKnownPaths{
		HomeDir:    home,
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, ConfigFileName),
		MRUFile:    filepath.Join(configDir, MRUFileName),
	}
}

// ToCanon makes path absolute, resolves symlinks when it can, and replaces a
// leading home directory with "~". When resolution fails the absolute path
// is used as is. The result is meant to be stored.
func ToCanon(path, home string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return CompressTilde(path, home)
}

// FromCanon is the inverse of ToCanon: it turns a stored path back into one
// the program can use.
func FromCanon(path, home string) string {
	return ExpandTilde(path, home)
}

// CompressTilde replaces the leading components of path with "~" when they
// equal home. Matching is per component, so "/home/philip" does not match a
// home of "/home/phil".
func CompressTilde(path, home string) string {
	home = trimTrailingSeparators(home)
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home); ok && len(rest) > 0 && isSeparator(rest[0]) {
		return "~" + rest
	}
	return path
}

// ExpandTilde replaces a leading "~" with home. Only "~" alone or followed
// by a separator is expanded; "~bob/x" is left untouched.
func ExpandTilde(path, home string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && isSeparator(path[1]) {
		home = trimTrailingSeparators(home)
		if len(home) == 1 && isSeparator(home[0]) {
			return home + path[2:]
		}
		return home + path[1:]
	}
	return path
}

func isSeparator(c byte) bool {
	return os.IsPathSeparator(c)
}

// trimTrailingSeparators strips trailing separators but keeps a lone root.
func trimTrailingSeparators(p string) string {
	for len(p) > 1 && isSeparator(p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	return p
}
