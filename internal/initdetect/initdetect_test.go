package initdetect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644))
}

func TestDetectEcosystems_NoMarkersFound(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, DetectEcosystems(dir))
}

func TestDetectEcosystems_SingleMarker(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "go.mod")
	assert.Equal(t, []string{"go"}, DetectEcosystems(dir))
}

func TestDetectEcosystems_MultipleMarkersPreserveFixedOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Cargo.toml")
	touch(t, dir, "package.json")
	touch(t, dir, "go.mod")

	assert.Equal(t, []string{"node", "go", "rust"}, DetectEcosystems(dir))
}

func TestDetectEcosystems_IgnoresNestedMarkers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	touch(t, filepath.Join(dir, "sub"), "package.json")

	assert.Empty(t, DetectEcosystems(dir))
}
