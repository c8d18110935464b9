// Package config loads the package-layer project file.
//
// The project file is optional: commands that receive a direct version id
// work without one. It carries the org API version and the package alias
// table used to resolve --package values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/package-layer/internal/ids"
	"github.com/conn-castle/package-layer/internal/messages"
)

const (
	// FileName is the project config file name.
	FileName = "package-layer.toml"
	// MinAPIVersion is the oldest org API version the install protocol supports.
	MinAPIVersion = 36
	// DefaultAPIVersion is used when the project file sets no api_version.
	DefaultAPIVersion = 64
)

// Config is the parsed project file.
type Config struct {
	APIVersion int               `toml:"api_version"`
	Aliases    map[string]string `toml:"aliases"`
}

// Default returns the config used when no project file exists.
func Default() *Config {
	return &Config{APIVersion: DefaultAPIVersion}
}

// Load reads and validates the project file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates raw project file contents.
// source names the origin in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if cfg.APIVersion == 0 {
		cfg.APIVersion = DefaultAPIVersion
	}
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the config is usable. source names the origin in error messages.
func (c *Config) Validate(source string) error {
	if c.APIVersion < MinAPIVersion {
		return fmt.Errorf(messages.ConfigAPIVersionUnsupportedFmt, source, c.APIVersion, MinAPIVersion)
	}
	for alias, id := range c.Aliases {
		if !ids.Valid(id, ids.SubscriberPackageVersionPrefix) {
			return fmt.Errorf(messages.ConfigAliasIDInvalidFmt, source, alias, id)
		}
	}
	return nil
}

// Resolve returns the version id an alias maps to.
func (c *Config) Resolve(alias string) (string, bool) {
	id, ok := c.Aliases[alias]
	return id, ok
}

// FindFile walks up from dir looking for the project file.
// It returns the file path and whether one was found.
func FindFile(dir string) (string, bool, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(current, FileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false, nil
		}
		current = parent
	}
}
