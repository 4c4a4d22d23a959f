// Package config loads the twig configuration from YAML.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the options twig reads once at startup. The UI receives it by
// value and never consults files or environment variables itself.
type Config struct {
	// DebugLog is a file path for debug logging. Empty disables logging.
	DebugLog string `yaml:"debug_log"`
	// ShowUpstreams renders the remote-tracking ref next to each branch.
	ShowUpstreams bool `yaml:"show_upstreams"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ShowUpstreams: true,
	}
}

// DefaultPath returns the conventional config file location. The TWIG_CONFIG
// environment variable overrides it.
func DefaultPath() string {
	if p := os.Getenv("TWIG_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "twig", "config.yaml")
}

// Load reads the configuration at path on top of the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
