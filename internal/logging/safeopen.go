package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/isseis/go-pathtoken/internal/safefileio"
)

// Common errors
var (
	ErrEmptyLogDirectory = errors.New("log directory cannot be empty")
)

// File permissions constants
const (
	logDirPerm  os.FileMode = 0o750
	logFilePerm os.FileMode = 0o600
)

// timestampLayout is the UTC timestamp embedded in run log names.
const timestampLayout = "20060102T150405Z"

// SafeFileOpener creates run log files without following symlinks.
type SafeFileOpener struct {
	fs  safefileio.FileSystem
	now func() time.Time
}

// NewSafeFileOpener creates a new SafeFileOpener backed by the local disk.
func NewSafeFileOpener() *SafeFileOpener {
	return &SafeFileOpener{
		fs:  safefileio.NewFileSystem(),
		now: time.Now,
	}
}

// OpenRunLog creates a new log file for runID inside dir and returns it
// with its path. The directory is created if needed.
func (s *SafeFileOpener) OpenRunLog(dir, runID string) (io.WriteCloser, string, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, s.LogFilename(runID))
	file, err := safefileio.SafeCreateFileWithFS(path, logFilePerm, s.fs)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file %s safely: %w", path, err)
	}
	return file, path, nil
}

// LogFilename returns "<host>_<timestamp>_<runID>.json".
func (s *SafeFileOpener) LogFilename(runID string) string {
	return fmt.Sprintf("%s_%s_%s.json", Hostname(), s.now().UTC().Format(timestampLayout), runID)
}

// Hostname returns the host name, or "unknown" when it cannot be determined.
func Hostname() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "unknown"
	}
	return hostname
}

// GenerateRunID generates a new UUID v4 for run identification
func GenerateRunID() string {
	return uuid.New().String()
}

// ValidateLogDir ensures the log directory exists and is writable.
func ValidateLogDir(dir string) error {
	if dir == "" {
		return ErrEmptyLogDirectory
	}

	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test_"+GenerateRunID())
	f, err := safefileio.SafeCreateFile(probe, logFilePerm)
	if err != nil {
		return fmt.Errorf("cannot write to log directory %s: %w", dir, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close test file: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("failed to remove test file: %w", err)
	}
	return nil
}
