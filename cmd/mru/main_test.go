//go:build !windows

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/isseis/go-pathtoken/internal/pathencoding"
	"github.com/isseis/go-pathtoken/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHome points HOME and the config directory at a fresh temp dir.
func testHome(t *testing.T) string {
	t.Helper()
	home, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func mkdirs(t *testing.T, home string, names ...string) []string {
	t.Helper()
	dirs := make([]string, len(names))
	for i, name := range names {
		dirs[i] = filepath.Join(home, name)
		require.NoError(t, os.MkdirAll(dirs[i], 0o755))
	}
	return dirs
}

func mruFile(t *testing.T) string {
	t.Helper()
	wkp, err := paths.NewWellKnownPaths()
	require.NoError(t, err)
	return wkp.MRUFile
}

func runOK(t *testing.T, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--no-logging"}, args...), &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	return stdout.String()
}

func TestMRU_AddListEncoded(t *testing.T) {
	home := testHome(t)
	dirs := mkdirs(t, home, "alpha", "beta")

	out := runOK(t, "add", dirs[0], dirs[1])
	assert.Equal(t, "Added "+dirs[0]+"\nAdded "+dirs[1]+"\n", out)

	assert.Equal(t, " 0  "+dirs[0]+"\n 1  "+dirs[1]+"\n", runOK(t, "list", "--width", "200"))
	assert.Equal(t, "~/alpha\n~/beta\n", runOK(t, "encoded"))

	content, err := os.ReadFile(mruFile(t))
	require.NoError(t, err)
	assert.Equal(t, "~/alpha\n~/beta\n", string(content))

	runOK(t, "add", dirs[1])
	assert.Equal(t, "~/beta\n~/alpha\n", runOK(t, "encoded"), "re-adding moves to the front")
}

func TestMRU_AddDefaultsToCurrentDirectory(t *testing.T) {
	home := testHome(t)
	dirs := mkdirs(t, home, "here")
	t.Chdir(dirs[0])

	assert.Equal(t, "Added "+dirs[0]+"\n", runOK(t, "add"))
}

func TestMRU_AddRejectsMissingDirectory(t *testing.T) {
	home := testHome(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"add", filepath.Join(home, "nope")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "no usable directories")
	assert.Contains(t, stderr.String(), "directory does not exist")
	_, err := os.Stat(mruFile(t))
	assert.True(t, os.IsNotExist(err), "nothing is saved")
}

func TestMRU_Remove(t *testing.T) {
	home := testHome(t)
	dirs := mkdirs(t, home, "a", "b")
	runOK(t, "add", dirs[0], dirs[1])

	runOK(t, "remove", dirs[0])
	assert.Equal(t, "~/b\n", runOK(t, "encoded"))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-logging", "remove", dirs[0], dirs[1]}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "not in list: "+dirs[0])
	assert.Empty(t, runOK(t, "encoded"), "present entries are still removed")
}

func TestMRU_AwkwardDirectoryName(t *testing.T) {
	home := testHome(t)
	dirs := mkdirs(t, home, "line\nbreak")

	runOK(t, "add", dirs[0])

	encoded := strings.TrimSuffix(runOK(t, "encoded"), "\n")
	assert.True(t, pathencoding.IsEscaped(encoded))
	assert.NotContains(t, encoded, "\n")
	decoded, err := pathencoding.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "~/line\nbreak", decoded)

	assert.Equal(t, " 0  \""+home+"/line\\nbreak\"\n", runOK(t, "list", "--width", "200"))
}

func TestMRU_ListTruncates(t *testing.T) {
	home := testHome(t)
	dirs := mkdirs(t, home, "some/deeply/nested/project")
	runOK(t, "add", dirs[0])

	assert.Equal(t, " 0  …/project\n", runOK(t, "list", "--width", "13"))
}

func TestMRU_ConfigFile(t *testing.T) {
	home := testHome(t)
	dirs := mkdirs(t, home, "one", "two", "three")
	cfgFile := filepath.Join(home, "custom.toml")
	stateFile := filepath.Join(home, "state", "dirs.txt")
	content := "[mru]\nfile = \"~/state/dirs.txt\"\nmax_items = 2\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

	runOK(t, "--config", cfgFile, "add", dirs[0], dirs[1], dirs[2])

	data, err := os.ReadFile(stateFile)
	require.NoError(t, err)
	assert.Equal(t, "~/one\n~/two\n", string(data))
}

func TestMRU_BrokenConfig(t *testing.T) {
	home := testHome(t)
	cfgFile := filepath.Join(home, "broken.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("[mru\n"), 0o600))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--config", cfgFile, "list"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "failed to parse config")

	assert.Empty(t, runOK(t, "--config", cfgFile, "--no-config", "list"))
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := newRootCmd(newApp())
	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
		assert.NotNil(t, sub.RunE, "command %q must have RunE", sub.Name())
	}
	assert.Subset(t, names, []string{"add", "list", "remove", "encoded"})
}
