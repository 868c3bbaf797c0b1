// Package config handles qmdscan configuration file loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/connerohnesorge/qmdscan/internal/theme"
)

const (
	// ConfigFileName is the name of the qmdscan configuration file.
	ConfigFileName = "qmdscan.yaml"

	// DefaultScanner is the Scanner value of the default configuration.
	DefaultScanner = "block"
)

// Config holds the qmdscan configuration.
type Config struct {
	// Theme is the name of the color theme to use
	// (default, dark, light).
	Theme string `yaml:"theme"`
	// Scanner names a scanner: block, inline or doctemplate. It is
	// validated on load; the tokens and watch commands take the scanner
	// from their own --scanner flag and do not read this value.
	Scanner string `yaml:"scanner"`
	// Checkpoint is a checkpoint toggle loaded from the file. The
	// commands take checkpointing from their own --checkpoint flag and do
	// not read this value.
	Checkpoint bool `yaml:"checkpoint"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Theme:   "default",
		Scanner: DefaultScanner,
	}
}

// Load searches for qmdscan.yaml starting from the current working
// directory, walking up the directory tree. If no file is found the
// default configuration is returned.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFromPath searches for qmdscan.yaml starting from the given path,
// walking up the directory tree.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve absolute path for %q: %w",
			startPath, err,
		)
	}

	dir := absPath
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		data, readErr := os.ReadFile(candidate)
		if readErr == nil {
			return parse(data, candidate)
		}
		if !errors.Is(readErr, os.ErrNotExist) {
			return nil, fmt.Errorf(
				"failed to read %s: %w", candidate, readErr,
			)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

func parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Theme != "" {
		if _, err := theme.Get(c.Theme); err != nil {
			return err
		}
	}
	switch c.Scanner {
	case "", "block", "inline", "doctemplate":
	default:
		return fmt.Errorf("unknown scanner %q", c.Scanner)
	}

	return nil
}
