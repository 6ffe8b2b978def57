// Package testutil provides shared helpers for skaff tests: an
// in-memory filesystem and common filesystem assertions.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skaff/pkg/filesystem"
	"github.com/arthur-debert/skaff/pkg/types"
)

// NewMemoryFS returns an empty in-memory filesystem.
func NewMemoryFS(t *testing.T) types.FS {
	t.Helper()
	return filesystem.NewMemory()
}

// WriteFile writes content to path, failing the test on error.
func WriteFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(path, []byte(content), 0o644))
}

// MkdirAll creates the directory chain, failing the test on error.
func MkdirAll(t *testing.T, fs types.FS, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(path, 0o755))
}

// AssertFileContent asserts path exists with exactly the given content.
func AssertFileContent(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err, "file %s should exist", path)
	assert.Equal(t, content, string(data), "content of %s", path)
}

// AssertExists asserts path exists on the filesystem.
func AssertExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.NoError(t, err, "path %s should exist", path)
}

// AssertNotExists asserts path does not exist on the filesystem.
func AssertNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	assert.Error(t, err, "path %s should not exist", path)
}

// AssertIsDir asserts path exists and is a directory.
func AssertIsDir(t *testing.T, fs types.FS, path string) {
	t.Helper()
	info, err := fs.Stat(path)
	require.NoError(t, err, "path %s should exist", path)
	assert.True(t, info.IsDir(), "path %s should be a directory", path)
}
