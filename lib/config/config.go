// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file consulted by Load.
const EnvironmentVariable = "HEATINFO_TEST_CONFIG"

// Config is the top-level configuration file.
type Config struct {
	// Fixture configures the scratch heat-tracking filesystem.
	Fixture FixtureConfig `yaml:"fixture"`
}

// FixtureConfig describes how to build, format, and mount a throwaway
// loopback filesystem.
type FixtureConfig struct {
	// Root is the directory in which image files and mountpoints are
	// created. Default: ${TMPDIR:-/tmp}
	Root string `yaml:"root"`

	// ImageSizeMB is the size of the sparse backing image.
	// Default: 256 (the minimum btrfs accepts with default features
	// is well below this).
	ImageSizeMB int `yaml:"image_size_mb"`

	// FilesystemType is passed to mount -t.
	// Default: btrfs
	FilesystemType string `yaml:"filesystem_type"`

	// Mkfs is the format command. The image path is appended as the
	// final argument.
	// Default: [mkfs.btrfs, -f]
	Mkfs []string `yaml:"mkfs"`

	// MountOptions are always passed to mount, in addition to "loop".
	MountOptions []string `yaml:"mount_options"`

	// HeatOption is the mount option that enables heat tracking.
	// Default: hot_track
	HeatOption string `yaml:"heat_option"`
}

// Default returns the default configuration. Load and LoadFile start
// from it, so a config file only needs the fields it changes.
func Default() *Config {
	return &Config{
		Fixture: FixtureConfig{
			Root:           "${TMPDIR:-/tmp}",
			ImageSizeMB:    256,
			FilesystemType: "btrfs",
			Mkfs:           []string{"mkfs.btrfs", "-f"},
			HeatOption:     "hot_track",
		},
	}
}

// Expanded returns Default with path variables expanded, for callers
// that run without a config file.
func Expanded() *Config {
	cfg := Default()
	cfg.expandVariables()
	return cfg
}

// Load loads configuration from the file named by HEATINFO_TEST_CONFIG.
// Fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a fixture config file", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from path, layered over Default, and
// expands variables in path fields.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges a single YAML file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} in path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME":   os.Getenv("HOME"),
		"TMPDIR": os.Getenv("TMPDIR"),
	}

	c.Fixture.Root = expandVars(c.Fixture.Root, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Provided
// vars win over the process environment; empty values fall through to
// the default.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors, reporting all of them.
func (c *Config) Validate() error {
	var errs []error

	if c.Fixture.Root == "" {
		errs = append(errs, fmt.Errorf("fixture.root is required"))
	}

	if c.Fixture.ImageSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("fixture.image_size_mb must be positive, got %d", c.Fixture.ImageSizeMB))
	}

	if c.Fixture.FilesystemType == "" {
		errs = append(errs, fmt.Errorf("fixture.filesystem_type is required"))
	}

	if len(c.Fixture.Mkfs) == 0 || c.Fixture.Mkfs[0] == "" {
		errs = append(errs, fmt.Errorf("fixture.mkfs must name a command"))
	}

	if c.Fixture.HeatOption == "" {
		errs = append(errs, fmt.Errorf("fixture.heat_option is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates the fixture root if it does not exist.
func (c *Config) EnsurePaths() error {
	if c.Fixture.Root == "" {
		return nil
	}
	if err := os.MkdirAll(c.Fixture.Root, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Fixture.Root, err)
	}
	return nil
}
