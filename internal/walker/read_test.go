package walker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReadTestFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "content")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile_MissingFileErrors(t *testing.T) {
	_, ok, err := ReadFile(filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestReadFile_EmptyFileIsOKWithEmptyContent(t *testing.T) {
	path := writeReadTestFile(t, "")
	content, ok, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, content)
}

func TestReadFile_PlainTextSmallFile(t *testing.T) {
	path := writeReadTestFile(t, "package main\n")
	content, ok, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "package main\n", content)
}

func TestReadFile_OverLimitRejected(t *testing.T) {
	path := writeReadTestFile(t, strings.Repeat("a", 100))
	content, ok, err := ReadFile(path, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestReadFile_NoLimitWhenZero(t *testing.T) {
	path := writeReadTestFile(t, strings.Repeat("a", 100))
	_, ok, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReadFile_NULByteRejectedAsBinary(t *testing.T) {
	path := writeReadTestFile(t, "abc\x00def")
	content, ok, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestReadFile_InvalidUTF8Rejected(t *testing.T) {
	path := writeReadTestFile(t, string([]byte{0xff, 0xfe, 0xfd}))
	_, ok, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadFile_LargeFileUsesMmapPath(t *testing.T) {
	content := strings.Repeat("x", smallFileThreshold+1024)
	path := writeReadTestFile(t, content)

	got, ok, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, content, got)
}
