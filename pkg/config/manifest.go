package config

import (
	"path/filepath"
	"time"

	gotoml "github.com/pelletier/go-toml/v2"

	skafferrors "github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/paths"
	"github.com/arthur-debert/skaff/pkg/types"
)

// Manifest is the .skaff.toml marker written into each generated project
// root. It records how the skeleton was produced so later invocations can
// recognize a skaff-managed tree.
type Manifest struct {
	Name      string    `toml:"name"`
	Language  string    `toml:"language"`
	License   string    `toml:"license"`
	Authors   []string  `toml:"authors"`
	CreatedAt time.Time `toml:"created_at"`
}

// ManifestPath returns the manifest location for a project root.
func ManifestPath(root string) string {
	return filepath.Join(root, paths.ProjectManifestName)
}

// EncodeManifest serializes the manifest to TOML.
func EncodeManifest(m *Manifest) ([]byte, error) {
	data, err := gotoml.Marshal(m)
	if err != nil {
		return nil, skafferrors.Wrap(err, skafferrors.ErrInternal, "failed to encode project manifest")
	}
	return data, nil
}

// WriteManifest serializes the manifest into the project root.
func WriteManifest(fsys types.FS, root string, m *Manifest) error {
	data, err := EncodeManifest(m)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(ManifestPath(root), data, 0o644); err != nil {
		return skafferrors.Wrapf(err, skafferrors.ErrFileWrite,
			"failed to write %s", paths.ProjectManifestName)
	}
	return nil
}

// ReadManifest loads the manifest from a project root.
func ReadManifest(fsys types.FS, root string) (*Manifest, error) {
	data, err := fsys.ReadFile(ManifestPath(root))
	if err != nil {
		return nil, skafferrors.Wrapf(err, skafferrors.ErrFileAccess,
			"failed to read %s", paths.ProjectManifestName)
	}
	var m Manifest
	if err := gotoml.Unmarshal(data, &m); err != nil {
		return nil, skafferrors.Wrap(err, skafferrors.ErrConfigValid, "invalid project manifest")
	}
	return &m, nil
}
