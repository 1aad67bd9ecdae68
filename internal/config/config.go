// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package config reads the a2s command configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that may be stored in a YAML file. Command line flags override them.
//
//	scale: [9, 16]
//	tab_width: 8
//	blur: true
//	font: "Menlo,monospace"
//	objects: ~/.config/a2s/objects
//	format: svg
type Config struct {
	Scale    []float64 `yaml:"scale,flow"`
	TabWidth int       `yaml:"tab_width"`
	Blur     *bool     `yaml:"blur"`
	Font     string    `yaml:"font"`
	Objects  string    `yaml:"objects"`
	Format   string    `yaml:"format"`
}

// Formats supported by the command.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// DefaultPath returns the location of the configuration file under the user's config directory,
// or "" if there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "a2s", "config.yaml")
}

// Load reads the file at path. A missing file is not an error when optional is set; an empty
// Config is returned instead.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values that were set.
func (c *Config) Validate() error {
	if len(c.Scale) != 0 {
		if len(c.Scale) != 2 {
			return fmt.Errorf("scale needs 2 values, got %d", len(c.Scale))
		}
		if c.Scale[0] <= 0 || c.Scale[1] <= 0 {
			return fmt.Errorf("scale must be positive, got %gx%g", c.Scale[0], c.Scale[1])
		}
	}
	if c.TabWidth < 0 {
		return fmt.Errorf("tab_width must not be negative, got %d", c.TabWidth)
	}
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "", FormatSVG, FormatPNG:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}

// ObjectsDir returns the objects directory with a leading "~" expanded to the home directory.
func (c *Config) ObjectsDir() string {
	if c.Objects == "~" || strings.HasPrefix(c.Objects, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, c.Objects[1:])
		}
	}
	return c.Objects
}
