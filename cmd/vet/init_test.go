package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInit_WritesStarterConfig(t *testing.T) {
	dir := t.TempDir()
	initOutPath = filepath.Join(dir, ".vet.toml")

	require.NoError(t, runInit(nil, []string{dir}))

	data, err := os.ReadFile(initOutPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `minimum_confidence = "high"`)
	assert.Contains(t, string(data), ".git/**")
}

func TestRunInit_ExistingFileIsRuntimeError(t *testing.T) {
	dir := t.TempDir()
	initOutPath = filepath.Join(dir, ".vet.toml")
	require.NoError(t, os.WriteFile(initOutPath, []byte("existing"), 0o644))

	err := runInit(nil, []string{dir})
	require.Error(t, err)
	ce, ok := err.(*cliError)
	require.True(t, ok)
	assert.Equal(t, ExitRuntime, ce.code)
}

func TestRunInit_DetectsGoEcosystemAndAddsVendorExclude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/x\n"), 0o644))
	initOutPath = filepath.Join(dir, "out.toml")

	require.NoError(t, runInit(nil, []string{dir}))

	data, err := os.ReadFile(initOutPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vendor/**")
}

func TestRenderStarterConfig_IncludesEveryExclude(t *testing.T) {
	out := renderStarterConfig([]string{".git/**", "vendor/**"})
	assert.Contains(t, out, ".git/**")
	assert.Contains(t, out, "vendor/**")
}
