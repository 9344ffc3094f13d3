// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ariatag/aria/internal/pkg/util/fs"
	"github.com/ariatag/aria/pkg/alog"
	pluginapi "github.com/ariatag/aria/pkg/plugin"
)

// Plugin is an installed plugin known to the manager.
type Plugin struct {
	// Name is the plugin name, the base name of its directory.
	Name string
	// Dir is the installed location of the plugin.
	Dir string
	// Manifest is the parsed plugin manifest.
	Manifest *pluginapi.Manifest
	// Loaded reports whether the plugin is active in the host
	// application.
	Loaded bool
}

// Manager keeps the registry of installed plugins across one or more
// plugin directories and tracks the user's enabled set. It is not
// safe for concurrent use, callers serialize access the same way the
// installation runner serializes installations.
type Manager struct {
	configFile string
	dirs       []string
	primary    string
	plugins    []*Plugin
}

// NewManager returns a Manager persisting the enabled set in
// configFile.
func NewManager(configFile string) *Manager {
	return &Manager{
		configFile: configFile,
	}
}

// AddDirectory registers a plugin directory and scans it for
// installed plugins. The primary directory is the installation
// target.
func (m *Manager) AddDirectory(dir string, primary bool) error {
	dir = filepath.Clean(dir)
	alog.Debugf("Registering plugin directory %s", dir)

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create plugin directory %s: %s", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read plugin directory %s: %s", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if p := m.loadPlugin(dir, entry.Name()); p != nil {
			alog.Debugf("Found plugin %s in %s", p.Name, p.Dir)
			m.plugins = append(m.plugins, p)
		}
	}

	m.dirs = append(m.dirs, dir)
	if primary {
		m.primary = dir
	}
	return nil
}

func (m *Manager) loadPlugin(dir, name string) *Plugin {
	pluginDir := filepath.Join(dir, name)

	manifest, err := pluginapi.LoadManifest(pluginDir)
	if err != nil {
		alog.Warningf("Could not read plugin manifest from %s: %s", pluginDir, err)
		return nil
	}

	declared, err := manifest.APIVersions()
	if err != nil {
		alog.Warningf("Could not read plugin manifest from %s: %s", pluginDir, err)
		return nil
	}

	if !isCompatible(declared) {
		alog.Warningf("Plugin %q from %q is not compatible with this version of aria. "+
			"Plugin requires API versions: %v, but aria supports: %v",
			name, pluginDir, manifest.API, hostAPIStrings())
		return nil
	}

	return &Plugin{
		Name:     name,
		Dir:      pluginDir,
		Manifest: manifest,
	}
}

// PrimaryDir returns the primary plugin directory, the target of
// installations.
func (m *Manager) PrimaryDir() string {
	return m.primary
}

// Refresh rescans all registered plugin directories.
func (m *Manager) Refresh() error {
	dirs := m.dirs
	primary := m.primary

	m.dirs = nil
	m.primary = ""
	m.plugins = nil

	for _, dir := range dirs {
		if err := m.AddDirectory(dir, dir == primary); err != nil {
			return err
		}
	}
	return nil
}

// Plugins returns all known plugins sorted by name.
func (m *Manager) Plugins() []*Plugin {
	plugins := make([]*Plugin, len(m.plugins))
	copy(plugins, m.plugins)
	sort.Slice(plugins, func(i, j int) bool {
		return plugins[i].Name < plugins[j].Name
	})
	return plugins
}

// Plugin returns the named plugin, or nil if it is unknown.
func (m *Manager) Plugin(name string) *Plugin {
	for _, p := range m.plugins {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// EnabledPlugins returns the names of all enabled plugins from the
// user configuration.
func (m *Manager) EnabledPlugins() ([]string, error) {
	c, err := LoadConfig(m.configFile)
	if err != nil {
		return nil, err
	}
	return c.Enabled, nil
}

// IsEnabled reports whether the named plugin is enabled.
func (m *Manager) IsEnabled(name string) (bool, error) {
	c, err := LoadConfig(m.configFile)
	if err != nil {
		return false, err
	}
	return c.IsEnabled(name), nil
}

// Enable marks the named plugin enabled and persists that. Enabling
// an already enabled plugin is a no-op.
func (m *Manager) Enable(name string) error {
	c, err := LoadConfig(m.configFile)
	if err != nil {
		return err
	}

	if !c.SetEnabled(name, true) {
		alog.Infof("Plugin %q is already enabled", name)
		return nil
	}
	if err := SaveConfig(c, m.configFile); err != nil {
		return err
	}

	if p := m.Plugin(name); p != nil {
		p.Loaded = true
	}

	alog.Debugf("Enabled plugin %s", name)
	return nil
}

// Disable marks the named plugin disabled and persists that.
// Disabling an already disabled plugin is a no-op.
func (m *Manager) Disable(name string) error {
	c, err := LoadConfig(m.configFile)
	if err != nil {
		return err
	}

	if !c.SetEnabled(name, false) {
		alog.Infof("Plugin %q is already disabled", name)
		return nil
	}
	if err := SaveConfig(c, m.configFile); err != nil {
		return err
	}

	if p := m.Plugin(name); p != nil {
		p.Loaded = false
	}

	alog.Debugf("Disabled plugin %s", name)
	return nil
}

// Uninstall disables the named plugin and removes its directory from
// the primary plugin directory.
func (m *Manager) Uninstall(name string) error {
	if !validPluginName(name) {
		return fmt.Errorf("invalid plugin name %q", name)
	}

	if err := m.Disable(name); err != nil {
		alog.Warningf("Could not disable plugin %q: %s", name, err)
	}

	target := filepath.Join(m.primary, name)
	if p := m.Plugin(name); p != nil {
		target = p.Dir
	} else if !fs.IsDir(target) {
		return fmt.Errorf("plugin %q is not installed", name)
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("could not remove %s: %s", target, err)
	}

	alog.Debugf("Uninstalled plugin %q from %q", name, target)
	return m.Refresh()
}

// Activate marks every enabled plugin as loaded. Load failures of
// single plugins are logged and skipped.
func (m *Manager) Activate() error {
	enabled, err := m.EnabledPlugins()
	if err != nil {
		return err
	}

	set := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		set[name] = true
	}

	for _, p := range m.plugins {
		if !set[p.Name] {
			alog.Debugf("Plugin %s is disabled, skipping", p.Name)
			continue
		}
		p.Loaded = true
		alog.Debugf("Enabled plugin %s", p.Name)
	}
	return nil
}
