// pkg/config/manifest_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test project manifest reading and writing

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skaff/pkg/config"
	"github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/testutil"
)

func TestManifestRoundTrip(t *testing.T) {
	fsys := testutil.NewMemoryFS(t)
	testutil.MkdirAll(t, fsys, "/project")

	written := &config.Manifest{
		Name:      "widget",
		Language:  "cpp",
		License:   "bsd3",
		Authors:   []string{"Ada Lovelace"},
		CreatedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, config.WriteManifest(fsys, "/project", written))
	testutil.AssertExists(t, fsys, "/project/.skaff.toml")

	read, err := config.ReadManifest(fsys, "/project")
	require.NoError(t, err)
	assert.Equal(t, written, read)
}

func TestReadManifestMissing(t *testing.T) {
	fsys := testutil.NewMemoryFS(t)
	testutil.MkdirAll(t, fsys, "/project")

	_, err := config.ReadManifest(fsys, "/project")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFileAccess))
}

func TestReadManifestMalformed(t *testing.T) {
	fsys := testutil.NewMemoryFS(t)
	testutil.WriteFile(t, fsys, "/project/.skaff.toml", "not = [valid toml\n")

	_, err := config.ReadManifest(fsys, "/project")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfigValid))
}
