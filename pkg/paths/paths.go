// Package paths provides centralized path handling for skaff.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvSkaffConfigDir overrides the XDG config directory for skaff
	EnvSkaffConfigDir = "SKAFF_CONFIG_DIR"

	// EnvSkaffStateDir overrides the XDG state directory for skaff
	EnvSkaffStateDir = "SKAFF_STATE_DIR"
)

// Default directories and files
const (
	// SkaffDirName is the directory name for skaff-specific files
	SkaffDirName = "skaff"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "skaff.toml"

	// ProjectManifestName is the name of the manifest written into
	// each generated project root
	ProjectManifestName = ".skaff.toml"

	// LogFileName is the name of the log file
	LogFileName = "skaff.log"
)

// ConfigDir returns the configuration directory for skaff,
// honoring SKAFF_CONFIG_DIR over the XDG default.
func ConfigDir() string {
	if dir := os.Getenv(EnvSkaffConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, SkaffDirName)
}

// ConfigFilePath returns the full path to the user configuration file.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the state directory for skaff,
// honoring SKAFF_STATE_DIR over the XDG default.
func StateDir() string {
	if dir := os.Getenv(EnvSkaffStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, SkaffDirName)
}

// LogFilePath returns the full path to the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
