// Package config loads persistent ipmt settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/praetorian-inc/ipmt/pkg/enum"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "IPMT_CONFIG"

// Config holds user settings that have no command-line option.
type Config struct {
	Color          string `yaml:"color"`           // auto, always, never
	Workers        int    `yaml:"workers"`         // 0 = one per CPU
	IncludeHidden  bool   `yaml:"include_hidden"`  // walk hidden entries in directories
	MaxFileSize    int64  `yaml:"max_file_size"`   // bytes, 0 = no limit; directory walks only
	FollowSymlinks bool   `yaml:"follow_symlinks"` // include symlinked files in directory walks
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Color:       "auto",
		MaxFileSize: 10 * 1024 * 1024,
	}
}

// Path returns the config file location: $IPMT_CONFIG, then
// $XDG_CONFIG_HOME/ipmt/config.yaml, then ~/.config/ipmt/config.yaml.
// Returns "" if none can be determined.
func Path(getenv func(string) string) string {
	if p := getenv(EnvPath); p != "" {
		return p
	}
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ipmt", "config.yaml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "ipmt", "config.yaml")
	}
	return ""
}

// Load reads the config at path. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the location given by Path.
func LoadDefault() (Config, error) {
	return Load(Path(os.Getenv))
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (use auto, always or never)", c.Color)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must not be negative, got %d", c.MaxFileSize)
	}
	return nil
}

// Enum returns the enumeration settings.
func (c Config) Enum() enum.Config {
	return enum.Config{
		IncludeHidden:  c.IncludeHidden,
		MaxFileSize:    c.MaxFileSize,
		FollowSymlinks: c.FollowSymlinks,
	}
}
