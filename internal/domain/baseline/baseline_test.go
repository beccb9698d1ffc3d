package baseline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vet-dev/vet/internal/domain/values"
)

func TestParseStatus_ValidLiterals(t *testing.T) {
	got, err := ParseStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, got)

	got, err = ParseStatus("ignored")
	require.NoError(t, err)
	assert.Equal(t, StatusIgnored, got)
}

func TestParseStatus_InvalidLiteral(t *testing.T) {
	_, err := ParseStatus("reviewed")
	assert.Error(t, err)
}

func TestLoad_MissingFileReturnsErrNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad_UnsupportedVersionErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"99"}`), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestLoad_InvalidEntryStatusErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")
	body := `{"version":"1","findings":[{"fingerprint":"sha256:a","status":"maybe"}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")
	now := time.Now()

	b := New("1.2.3", now)
	b.AddFinding(Entry{
		Fingerprint: "sha256:aaa",
		PatternID:   "cloud/aws-access-key",
		Severity:    values.SeverityCritical,
		File:        "src/config.go",
		SecretHash:  "sha256:abc",
		Status:      StatusAccepted,
		ReviewedAt:  now,
	})
	require.NoError(t, b.Save(path, "1.2.3", now))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Findings, 1)
	assert.Equal(t, "sha256:aaa", loaded.Findings[0].Fingerprint)
	assert.Equal(t, CurrentVersion, loaded.Version)
}

func TestAddFinding_ReplacesExistingByFingerprint(t *testing.T) {
	b := New("1.0.0", time.Now())
	b.AddFinding(Entry{Fingerprint: "sha256:aaa", Status: StatusAccepted})
	b.AddFinding(Entry{Fingerprint: "sha256:aaa", Status: StatusIgnored})

	require.Len(t, b.Findings, 1)
	assert.Equal(t, StatusIgnored, b.Findings[0].Status)
}

func TestComputeStats_TalliesByStatus(t *testing.T) {
	b := New("1.0.0", time.Now())
	b.AddFinding(Entry{Fingerprint: "sha256:a", Status: StatusAccepted})
	b.AddFinding(Entry{Fingerprint: "sha256:b", Status: StatusAccepted})
	b.AddFinding(Entry{Fingerprint: "sha256:c", Status: StatusIgnored})

	stats := b.ComputeStats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Accepted)
	assert.Equal(t, 1, stats.Ignored)
}

func TestSave_WritesAtomicallyNoLeftoverTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")
	b := New("1.0.0", time.Now())

	require.NoError(t, b.Save(path, "1.0.0", time.Now()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "baseline.json", entries[0].Name())
}
