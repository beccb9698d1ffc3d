package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsConfigPath_FlagOverridesRoot(t *testing.T) {
	assert.Equal(t, "/explicit/.vet.toml", absConfigPath("/repo", "/explicit/.vet.toml"))
}

func TestAbsConfigPath_DefaultJoinsRootAndVetToml(t *testing.T) {
	assert.Equal(t, filepath.Join("/repo", ".vet.toml"), absConfigPath("/repo", ""))
}

func TestLoadEnvironment_MissingConfigFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	env, err := loadEnvironment(filepath.Join(dir, ".vet.toml"), "")
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.NotNil(t, env.registry)
	assert.NotNil(t, env.scanner)
	assert.NotNil(t, env.walker)
	assert.NotNil(t, env.verifier)
	assert.NotNil(t, env.matcher)
}

func TestLoadEnvironment_ExplicitBaselineOverrideMissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := loadEnvironment(filepath.Join(dir, ".vet.toml"), filepath.Join(dir, "missing.baseline.json"))
	assert.Error(t, err)
}
