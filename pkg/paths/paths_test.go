package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDirOverride(t *testing.T) {
	t.Setenv(EnvSkaffConfigDir, "/custom/config")
	assert.Equal(t, "/custom/config", ConfigDir())
	assert.Equal(t, filepath.Join("/custom/config", ConfigFileName), ConfigFilePath())
}

func TestConfigDirDefault(t *testing.T) {
	t.Setenv(EnvSkaffConfigDir, "")
	dir := ConfigDir()
	assert.Equal(t, SkaffDirName, filepath.Base(dir))
}

func TestStateDirOverride(t *testing.T) {
	t.Setenv(EnvSkaffStateDir, "/custom/state")
	assert.Equal(t, "/custom/state", StateDir())
	assert.Equal(t, filepath.Join("/custom/state", LogFileName), LogFilePath())
}

func TestStateDirDefault(t *testing.T) {
	t.Setenv(EnvSkaffStateDir, "")
	dir := StateDir()
	assert.Equal(t, SkaffDirName, filepath.Base(dir))
}
