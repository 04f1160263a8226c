package workdirs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func failingCwd() (string, error) {
	return "", errors.New("cwd should not be consulted")
}

func TestVerify_EmptyUsesCurrentDirectory(t *testing.T) {
	dir := tempDir(t)

	got, problems := Verify(nil, func() (string, error) { return dir, nil })
	assert.Empty(t, problems)
	assert.Equal(t, []string{dir}, got)
}

func TestVerify_CurrentDirectoryError(t *testing.T) {
	errCwd := errors.New("removed")

	got, problems := Verify(nil, func() (string, error) { return "", errCwd })
	assert.Empty(t, got)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0], ErrNoCurrentDir)
	assert.ErrorIs(t, problems[0], errCwd)
}

func TestVerify_DropsAndDedupes(t *testing.T) {
	root := tempDir(t)
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	require.NoError(t, os.Mkdir(a, 0o755))
	require.NoError(t, os.Mkdir(b, 0o755))
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	missing := filepath.Join(root, "missing")

	got, problems := Verify([]string{b, missing, a, file, b + string(filepath.Separator), a}, failingCwd)

	assert.Equal(t, []string{b, a}, got)
	require.Len(t, problems, 2)

	var dirErr *DirError
	require.ErrorAs(t, problems[0], &dirErr)
	assert.Equal(t, missing, dirErr.Path)
	assert.ErrorIs(t, problems[0], ErrNotExist)
	assert.ErrorIs(t, problems[1], ErrNotDirectory)
	assert.Contains(t, problems[1].Error(), "ignoring")
}

func TestVerify_RelativeAndSymlinked(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	root := tempDir(t)
	target := filepath.Join(root, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "alias")))
	t.Chdir(root)

	got, problems := Verify([]string{"alias", "target", "."}, failingCwd)
	assert.Empty(t, problems)
	assert.Equal(t, []string{target, root}, got)
}
