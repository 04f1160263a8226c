package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/isseis/go-pathtoken/internal/pathencoding"
	"github.com/stretchr/testify/assert"
)

func TestRun_Arguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"/home/phil", "a\tb", ""}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
	expected := "/home/phil\n" +
		pathencoding.Encode("a\tb") + "\n" +
		"\n"
	assert.Equal(t, expected, stdout.String())
	assert.True(t, pathencoding.IsEscaped(pathencoding.Encode("a\tb")))
}

func TestRun_StdinLines(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, strings.NewReader("/tmp\n/usr/bin\n"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "/tmp\n/usr/bin\n", stdout.String())
}

func TestRun_StdinNul(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-0"}, strings.NewReader("x\ny\x00z\x00"), &stdout, &stderr)

	assert.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	assert.Equal(t, []string{pathencoding.Encode("x\ny"), "z"}, lines)
	assert.True(t, pathencoding.IsEscaped(lines[0]))
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 0, run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run([]string{"-bogus"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Error:")
}
