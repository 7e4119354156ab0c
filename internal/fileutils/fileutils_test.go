package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "нет.pdf")))
	assert.False(t, FileExists(dir), "a directory is not a file")
}

func TestFileIsEmpty(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.pdf")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	assert.True(t, FileIsEmpty(empty))

	full := filepath.Join(dir, "full.pdf")
	require.NoError(t, os.WriteFile(full, []byte("data"), 0600))
	assert.False(t, FileIsEmpty(full))

	assert.False(t, FileIsEmpty(filepath.Join(dir, "нет.pdf")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent for an existing directory.
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.csv")

	file, err := CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.True(t, FileExists(path))
}
