package safefileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// MaxFileSize is the maximum allowed file size for SafeReadFile (16 MB)
const MaxFileSize = 16 * 1024 * 1024

// File is an interface that abstracts file operations
type File interface {
	io.Reader
	io.Writer
	Close() error
	Stat() (os.FileInfo, error)
	Sync() error
}

// FileSystem is an interface that abstracts file system operations
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

type osFS struct{}

// defaultFS implements FileSystem using the local disk
var defaultFS FileSystem = osFS{}

// NewFileSystem returns a FileSystem backed by the local disk.
func NewFileSystem() FileSystem {
	return defaultFS
}

func (osFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	// #nosec G304 - callers pass absolute paths and O_NOFOLLOW guards the last component
	return os.OpenFile(name, flag, perm)
}

func (osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osFS) Remove(name string) error {
	return os.Remove(name)
}

// SafeReadFile reads a regular file without following a symlink in its final
// component. It enforces a maximum file size of MaxFileSize.
func SafeReadFile(filePath string) ([]byte, error) {
	return SafeReadFileWithFS(filePath, defaultFS)
}

// SafeReadFileWithFS is SafeReadFile on the given FileSystem.
func SafeReadFileWithFS(filePath string, fs FileSystem) ([]byte, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}

	file, err := fs.OpenFile(absPath, os.O_RDONLY|oNoFollow, 0)
	if err != nil {
		if isNoFollowError(err) {
			return nil, fmt.Errorf("%w: %s", ErrIsSymlink, absPath)
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	fileInfo, err := validateFile(file, absPath)
	if err != nil {
		return nil, err
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, absPath)
	}

	content, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(content)) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, absPath)
	}

	return content, nil
}

// SafeWriteFileOverwrite replaces the content of filePath atomically. The
// content is written to a uniquely named temporary file in the same
// directory, synced, and renamed over the destination, so readers see
// either the old or the new content. A symlink at filePath is replaced,
// never followed.
func SafeWriteFileOverwrite(filePath string, content []byte, perm os.FileMode) error {
	return SafeWriteFileOverwriteWithFS(filePath, content, perm, defaultFS)
}

// SafeWriteFileOverwriteWithFS is SafeWriteFileOverwrite on the given FileSystem.
func SafeWriteFileOverwriteWithFS(filePath string, content []byte, perm os.FileMode, fs FileSystem) (err error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}
	tmpPath := tempPathFor(absPath)
	file, err := fs.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL|oNoFollow, perm)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = fs.Remove(tmpPath)
		}
	}()

	if _, err = file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write to %s: %w", tmpPath, err)
	}
	if err = file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err = fs.Rename(tmpPath, absPath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", absPath, err)
	}
	return nil
}

// SafeCreateFile creates filePath exclusively for writing. It fails if the
// file already exists or if the final component is a symlink.
func SafeCreateFile(filePath string, perm os.FileMode) (File, error) {
	return SafeCreateFileWithFS(filePath, perm, defaultFS)
}

// SafeCreateFileWithFS is SafeCreateFile on the given FileSystem.
func SafeCreateFileWithFS(filePath string, perm os.FileMode, fs FileSystem) (File, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilePath, err)
	}
	file, err := fs.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL|oNoFollow, perm)
	if err != nil {
		if isNoFollowError(err) {
			return nil, fmt.Errorf("%w: %s", ErrIsSymlink, absPath)
		}
		return nil, err
	}
	return file, nil
}

// tempPathFor returns a hidden sibling of path with a ULID suffix.
func tempPathFor(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+ulid.Make().String()+".tmp")
}

// validateFile checks if the file is a regular file and returns its FileInfo
// To prevent TOCTOU attacks, we use the file descriptor to get the file info
func validateFile(file File, filePath string) (os.FileInfo, error) {
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	if fileInfo.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("%w: %s", ErrIsSymlink, filePath)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file: %s", ErrInvalidFilePath, filePath)
	}

	return fileInfo, nil
}

// IsNotExist reports whether err means the file does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
