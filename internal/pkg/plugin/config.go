// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config stores which plugins the user enabled. It is persisted in
// the user configuration directory.
type Config struct {
	Enabled []string `yaml:"Enabled"`
}

// ReadFrom reads a plugin configuration from r.
func ReadFrom(r io.Reader) (*Config, error) {
	c := &Config{}

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read from io.Reader: %s", err)
	}

	if len(b) > 0 {
		if err := yaml.UnmarshalStrict(b, c); err != nil {
			return nil, fmt.Errorf("failed to decode YAML data from io.Reader: %s", err)
		}
	}

	return c, nil
}

// WriteTo writes the configuration to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal plugin config to yaml: %v", err)
	}

	n, err := w.Write(data)
	if err != nil {
		return 0, fmt.Errorf("failed to write plugin config to io.Writer: %v", err)
	}

	return int64(n), err
}

// IsEnabled reports whether the named plugin is enabled.
func (c *Config) IsEnabled(name string) bool {
	for _, n := range c.Enabled {
		if n == name {
			return true
		}
	}
	return false
}

// SetEnabled flips the enabled state of the named plugin and reports
// whether the configuration changed.
func (c *Config) SetEnabled(name string, enabled bool) bool {
	if enabled {
		if c.IsEnabled(name) {
			return false
		}
		c.Enabled = append(c.Enabled, name)
		return true
	}

	for i, n := range c.Enabled {
		if n == name {
			c.Enabled = append(c.Enabled[:i], c.Enabled[i+1:]...)
			return true
		}
	}
	return false
}

// LoadConfig reads the plugin configuration from path. A missing file
// yields an empty configuration.
func LoadConfig(path string) (*Config, error) {
	fh, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("while opening plugin config file: %s", err)
	}
	defer fh.Close()

	return ReadFrom(fh)
}

// SaveConfig writes the plugin configuration to path.
func SaveConfig(c *Config, path string) error {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("while opening plugin config file: %s", err)
	}
	defer fh.Close()

	if _, err := c.WriteTo(fh); err != nil {
		return err
	}
	return nil
}
