// Package config loads the tool's configuration and API credentials.
//
// Configuration lives in an optional TOML or YAML file; credentials come
// from BAIDU_APP_ID / BAIDU_APP_KEY (optionally via a .env file) or the
// two-line $HOME/.baidufanyi_key file. Command-line flags, applied by the
// caller, take precedence over everything here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates a config file extension that is neither TOML
// nor YAML.
var ErrUnknownFormat = errors.New("unknown config file format")

// DefaultFormat is the output template applied when no format is
// configured: translated text, then source text, each on its own line.
const DefaultFormat = "%s\n%s\n"

// Config is the on-disk configuration. Zero configuration is valid; every
// field has a usable default.
type Config struct {
	// From is the default source language ("auto" detects it).
	From string `toml:"from" yaml:"from" json:"from,omitempty"`

	// To is the default target language.
	To string `toml:"to" yaml:"to" json:"to,omitempty"`

	// Formats are output templates in the minifmt language, applied in
	// order to every translated row. Empty means DefaultFormat.
	Formats []string `toml:"formats" yaml:"formats" json:"formats,omitempty"`

	// CollapseRuns truncates whitespace runs in the input to this many
	// characters before translation. 0 strips whitespace entirely.
	CollapseRuns int `toml:"collapse_runs" yaml:"collapse_runs" json:"collapse_runs,omitempty"`

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `toml:"timeout_seconds" yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		From:           "auto",
		To:             "auto",
		CollapseRuns:   2,
		TimeoutSeconds: 30,
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.CollapseRuns < 0 {
		return fmt.Errorf("collapse_runs must not be negative, got %d", c.CollapseRuns)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}

// Load reads a config file, decoded by extension, over the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config file from the default location, or returns
// the built-in defaults when no file exists there.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// DefaultPath probes the standard config locations and returns the first
// existing file, or "" when there is none. $XDG_CONFIG_HOME/fanyi is
// preferred over $HOME/.config/fanyi; TOML over YAML.
func DefaultPath() string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "fanyi"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "fanyi"))
	}
	for _, dir := range dirs {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
