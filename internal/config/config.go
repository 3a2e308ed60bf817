// Package config loads the optional .toolpin/config.toml project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/toolpin/internal/messages"
)

// Defaults applied when the config file or a field is absent.
const (
	DefaultManagerBinary  = "asdf"
	DefaultManifestName   = ".tool-versions"
	DefaultLicensesScript = "scripts/check_licenses.sh"
)

// Config is the project configuration. Every field is optional; missing
// values fall back to the defaults above.
type Config struct {
	Manager  ManagerConfig  `toml:"manager"`
	Manifest ManifestConfig `toml:"manifest"`
	Licenses LicensesConfig `toml:"licenses"`
}

// ManagerConfig selects the version-management subsystem executable.
type ManagerConfig struct {
	Binary string `toml:"binary"`
}

// ManifestConfig locates the version manifest, relative to the project root
// unless absolute. A leading ~ expands to the home directory.
type ManifestConfig struct {
	Path string `toml:"path"`
}

// LicensesConfig locates the license-compliance collaborator script.
type LicensesConfig struct {
	Script string `toml:"script"`
}

// Paths holds resolved paths for config files and directories.
type Paths struct {
	Root       string
	ConfigPath string
}

// DefaultPaths returns the default config paths for a project root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, ".toolpin", "config.toml"),
	}
}

// Load reads .toolpin/config.toml under root. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(root string) (*Config, error) {
	path := DefaultPaths(root).ConfigPath
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseFailedFmt, path, err)
	}
	cfg.applyDefaults()
	if strings.TrimSpace(cfg.Manifest.Path) == "" {
		return nil, errors.New(messages.ConfigManifestMissing)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Manager.Binary) == "" {
		c.Manager.Binary = DefaultManagerBinary
	}
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestName
	}
	if strings.TrimSpace(c.Licenses.Script) == "" {
		c.Licenses.Script = DefaultLicensesScript
	}
}

// ManifestPath resolves the configured manifest path against root.
func (c *Config) ManifestPath(root string) (string, error) {
	return resolvePath(root, c.Manifest.Path)
}

// LicensesScript resolves the configured license script path against root.
func (c *Config) LicensesScript(root string) (string, error) {
	return resolvePath(root, c.Licenses.Script)
}

// resolvePath expands ~ and anchors relative paths at the project root.
func resolvePath(root string, path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	return filepath.Join(root, expanded), nil
}
