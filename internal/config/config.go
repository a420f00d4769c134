// Package config loads optional client settings from a YAML file so
// machines with a nonstandard vswhere location or a blocked GitHub can
// be configured once instead of per invocation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vslocate/pkg/vswhere"
)

// FileName is the settings file looked up inside the cache directory
// when no explicit --config path is given.
const FileName = "config.yaml"

// Config mirrors the client knobs that make sense to persist.
type Config struct {
	// ExecutablePath overrides where vswhere.exe is found.
	ExecutablePath string `yaml:"executable_path"`

	// MirrorURL replaces the GitHub release lookup as download source.
	MirrorURL string `yaml:"mirror_url"`

	// CacheDir overrides where downloaded executables are stored.
	CacheDir string `yaml:"cache_dir"`
}

// Default returns the baseline configuration: everything resolved
// automatically.
func Default() Config {
	return Config{}
}

// Load reads and parses the settings file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the settings file from its conventional location
// inside the cache directory. A missing file is not an error; defaults
// are returned.
func LoadDefault() (Config, error) {
	dir, err := vswhere.DefaultCacheDir()
	if err != nil {
		return Config{}, err
	}

	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}

// Apply copies the configured overrides onto the client. Empty fields
// leave the client untouched.
func (c Config) Apply(client *vswhere.Client) {
	if c.ExecutablePath != "" {
		client.SetExecutablePath(c.ExecutablePath)
	}
	if c.MirrorURL != "" {
		client.SetDownloadMirror(c.MirrorURL)
	}
	if c.CacheDir != "" {
		client.SetCacheDir(c.CacheDir)
	}
}
