package config

import (
	_ "embed"
	"errors"
	"os"
	"os/user"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	skafferrors "github.com/arthur-debert/skaff/pkg/errors"
	"github.com/arthur-debert/skaff/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the effective scaffolding settings after layering
// defaults, the user configuration file, and environment overrides.
type Config struct {
	// Language is the default project-language key.
	Language string `koanf:"language"`

	// License is the default license key.
	License string `koanf:"license"`

	// Quiet suppresses interactive editor passes.
	Quiet bool `koanf:"quiet"`

	// Authors are the names signed into licenses and documentation
	// stubs. When empty the current OS user is used.
	Authors []string `koanf:"authors"`
}

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration: embedded defaults, then the
// user configuration file if it exists, then SKAFF_-prefixed environment
// variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, skafferrors.Wrap(err, skafferrors.ErrConfigLoad, "failed to load built-in defaults")
	}

	userConfigPath := paths.ConfigFilePath()
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, skafferrors.Wrapf(err, skafferrors.ErrConfigLoad,
				"failed to load config from %s", userConfigPath)
		}
	}

	err := k.Load(env.Provider("SKAFF_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SKAFF_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, skafferrors.Wrap(err, skafferrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, skafferrors.Wrap(err, skafferrors.ErrConfigValid, "invalid configuration")
	}
	return &cfg, nil
}

// Default returns the built-in defaults without touching the user
// configuration file or the environment.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The defaults are compiled in; failing to parse them is a
		// build defect.
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// ResolveAuthors returns the configured authors, falling back to the
// current OS user's full name, then login name.
func (c *Config) ResolveAuthors() []string {
	if len(c.Authors) > 0 {
		return c.Authors
	}
	current, err := user.Current()
	if err != nil {
		return []string{"Unknown"}
	}
	if current.Name != "" {
		return []string{current.Name}
	}
	return []string{current.Username}
}
