package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/sllist"
	"github.com/vk/sllist/internal/engine"
	"github.com/vk/sllist/internal/hcl"
)

const passingHCL = `
op "insert" { value = 10 }
op "insert" { value = 20 }
op "insert" {
  value = 15
  index = 1
}
op "get" {
  index  = 1
  expect = 15
}
op "print" {}
op "remove" {
  index = 0
  count = 2
}
op "count" { expect = 1 }
op "print" {}
`

const passingYAML = `
ops:
  - op: insert
    value: 1
  - op: insert
    value: 2
  - op: insert
    value: 3
  - op: remove
    index: 5
    expect_error: index_out_of_range
  - op: insert
    value: a
    index: -1
    expect_error: invalid_argument
  - op: print
`

const failingHCL = `
op "insert" { value = 1 }
op "get" { index = 3 }
`

func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.ErrorContains(t, err, "ScriptPath is a required")

	_, err = NewConfig(Config{ScriptPath: "x", LogFormat: "xml"})
	assert.ErrorContains(t, err, "invalid log format")

	cfg, err := NewConfig(Config{ScriptPath: "x", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.ScriptPath)
}

func TestRun_SingleFile(t *testing.T) {
	path := writeScript(t, t.TempDir(), "scenario.hcl", passingHCL)
	testApp, out, logs := SetupAppTest(t, &Config{ScriptPath: path})

	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, "[10 -> 15 -> 20]\n[20]\n", out.String())
	assert.Contains(t, logs.String(), "Script passed.")
}

func TestRun_Directory(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.hcl", passingHCL)
	writeScript(t, dir, "b.yaml", passingYAML)
	writeScript(t, dir, "ignored.txt", "not a script")

	testApp, out, _ := SetupAppTest(t, &Config{ScriptPath: dir})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "[10 -> 15 -> 20]\n[20]\n[1 -> 2 -> 3]\n", out.String())
}

func TestRun_FailureStopsByDefault(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.hcl", failingHCL)
	writeScript(t, dir, "b.hcl", passingHCL)

	testApp, out, logs := SetupAppTest(t, &Config{ScriptPath: dir})

	err := testApp.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sllist.ErrIndexOutOfRange)
	var opErr *engine.OpError
	assert.ErrorAs(t, err, &opErr)
	assert.Empty(t, out.String(), "second script must not run")
	assert.Contains(t, logs.String(), "Script failed.")
}

func TestRun_KeepGoing(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.hcl", failingHCL)
	writeScript(t, dir, "b.hcl", passingHCL)
	writeScript(t, dir, "c.hcl", `op "bogus" {}`)

	testApp, out, _ := SetupAppTest(t, &Config{ScriptPath: dir, KeepGoing: true})

	err := testApp.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sllist.ErrIndexOutOfRange)
	assert.ErrorContains(t, err, "failed to load script")
	assert.Equal(t, "[10 -> 15 -> 20]\n[20]\n", out.String())
}

func TestRun_NoScripts(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "notes.txt", "")

	testApp, _, _ := SetupAppTest(t, &Config{ScriptPath: dir})
	assert.ErrorIs(t, testApp.Run(context.Background()), ErrNoScripts)
}

func TestRun_MissingPath(t *testing.T) {
	testApp, _, _ := SetupAppTest(t, &Config{ScriptPath: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorContains(t, testApp.Run(context.Background()), "failed to find scripts")
}

func TestRun_CustomLoaders(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.hcl", passingHCL)
	writeScript(t, dir, "b.yaml", passingYAML)

	testApp, out, _ := SetupAppTest(t, &Config{ScriptPath: dir}, hcl.NewLoader())

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "[10 -> 15 -> 20]\n[20]\n", out.String(), "yaml is not registered")
}

func TestNewLogger(t *testing.T) {
	var buf SafeBuffer
	logger := newLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
