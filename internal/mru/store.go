package mru

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/isseis/go-pathtoken/internal/pathencoding"
	"github.com/isseis/go-pathtoken/internal/paths"
	"github.com/isseis/go-pathtoken/internal/safefileio"
)

// File permissions for the MRU file and its directory
const (
	fileDirPerm os.FileMode = 0o750
	filePerm    os.FileMode = 0o600
)

// Store is a List of directories backed by a file. Entries are held as
// absolute paths; on disk they are "~"-compressed and encoded, one token
// per line, most recent first.
type Store struct {
	file   string
	home   string
	list   *List[string]
	logger *slog.Logger
	fs     safefileio.FileSystem
}

// NewStore creates a Store for file. home is used for "~" compression;
// maxItems caps the list. A nil logger discards messages.
func NewStore(file, home string, maxItems int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		file:   file,
		home:   home,
		list:   NewList[string](maxItems),
		logger: logger,
		fs:     safefileio.NewFileSystem(),
	}
}

// File returns the backing file name.
func (s *Store) File() string { return s.file }

// Load replaces the in-memory list with the file's contents. A missing file
// is an empty list. Lines that do not decode are logged and skipped.
func (s *Store) Load() error {
	content, err := safefileio.SafeReadFileWithFS(s.file, s.fs)
	if err != nil {
		if safefileio.IsNotExist(err) {
			s.logger.Debug("MRU file does not exist, starting empty", "file", s.file)
			s.list = NewList[string](s.list.MaxItems())
			return nil
		}
		return fmt.Errorf("failed to read MRU file %s: %w", s.file, err)
	}

	var entries []string
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		decoded, err := pathencoding.Decode(line)
		if err != nil {
			s.logger.Warn("Skipping malformed MRU entry", "file", s.file, "line", i+1, "error", err)
			continue
		}
		entries = append(entries, paths.FromCanon(decoded, s.home))
	}

	// Inserting oldest first leaves the file's order and keeps the most
	// recent copy of any duplicate.
	list := NewList[string](s.list.MaxItems())
	for _, entry := range slices.Backward(entries) {
		list.Insert(entry)
	}
	list.ClearChanged()
	s.list = list

	s.logger.Debug("Loaded MRU file", "file", s.file, "entries", list.Len())
	return nil
}

// Tokens returns the lines Save would write, most recent first.
func (s *Store) Tokens() []string {
	tokens := make([]string, 0, s.list.Len())
	for _, p := range s.list.All() {
		tokens = append(tokens, pathencoding.Encode(paths.CompressTilde(p, s.home)))
	}
	return tokens
}

// Save writes the list atomically and clears the changed flag.
func (s *Store) Save() error {
	var b strings.Builder
	for _, token := range s.Tokens() {
		b.WriteString(token)
		b.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(s.file), fileDirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", s.file, err)
	}
	if err := safefileio.SafeWriteFileOverwriteWithFS(s.file, []byte(b.String()), filePerm, s.fs); err != nil {
		return fmt.Errorf("failed to write MRU file: %w", err)
	}
	s.list.ClearChanged()
	s.logger.Debug("Saved MRU file", "file", s.file, "entries", s.list.Len())
	return nil
}

// SaveIfChanged saves only when the list changed since the last Load or
// Save. It reports whether it wrote the file.
func (s *Store) SaveIfChanged() (bool, error) {
	if !s.list.Changed() {
		return false, nil
	}
	return true, s.Save()
}

// Add canonicalizes dir and makes it the most recent entry.
func (s *Store) Add(dir string) {
	s.list.Insert(s.canonical(dir))
}

// Remove deletes path, matching either its given or canonical form.
func (s *Store) Remove(path string) bool {
	if s.list.Remove(path) {
		return true
	}
	return s.list.Remove(s.canonical(path))
}

// Paths returns the entries, most recent first.
func (s *Store) Paths() []string { return s.list.Items() }

// Len returns the number of entries.
func (s *Store) Len() int { return s.list.Len() }

// Changed reports whether there are unsaved changes.
func (s *Store) Changed() bool { return s.list.Changed() }

// SetMaxItems changes the list capacity.
func (s *Store) SetMaxItems(n int) { s.list.SetMaxItems(n) }

func (s *Store) canonical(path string) string {
	return paths.FromCanon(paths.ToCanon(path, s.home), s.home)
}
