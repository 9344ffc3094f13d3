// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T, dir string) *Manager {
	t.Helper()

	m := NewManager(filepath.Join(t.TempDir(), "plugins.yaml"))
	if err := m.AddDirectory(dir, true); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestManagerScan(t *testing.T) {
	withHostAPIVersions(t, "3.0")
	dir := t.TempDir()

	writePluginDir(t, dir, "beta", testManifest("Beta", "3.0"))
	writePluginDir(t, dir, "alpha", testManifest("Alpha", "3.0"))

	// skipped during the scan: incompatible, broken and bare entries
	writePluginDir(t, dir, "legacy", testManifest("Legacy", "1.0"))
	writePluginDir(t, dir, "broken", "name = ")
	if err := os.MkdirAll(filepath.Join(dir, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "stray-file"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	m := newTestManager(t, dir)

	plugins := m.Plugins()
	if len(plugins) != 2 {
		t.Fatalf("unexpected number of plugins: %d", len(plugins))
	}
	// sorted by name
	if plugins[0].Name != "alpha" || plugins[1].Name != "beta" {
		t.Errorf("unexpected plugin order: %s, %s", plugins[0].Name, plugins[1].Name)
	}

	if m.PrimaryDir() != dir {
		t.Errorf("unexpected primary directory: %s", m.PrimaryDir())
	}
	if p := m.Plugin("alpha"); p == nil || p.Manifest.DisplayName("en") != "Alpha" {
		t.Errorf("unexpected plugin lookup result: %+v", p)
	}
	if m.Plugin("legacy") != nil {
		t.Errorf("incompatible plugin present in registry")
	}
}

func TestManagerEnableDisable(t *testing.T) {
	withHostAPIVersions(t, "3.0")
	dir := t.TempDir()
	writePluginDir(t, dir, "sample", testManifest("Sample", "3.0"))

	m := newTestManager(t, dir)

	if err := m.Enable("sample"); err != nil {
		t.Fatalf("unexpected error while enabling plugin: %s", err)
	}
	if enabled, err := m.IsEnabled("sample"); err != nil || !enabled {
		t.Errorf("plugin not enabled: %v, %s", enabled, err)
	}
	if !m.Plugin("sample").Loaded {
		t.Errorf("enabled plugin not marked loaded")
	}

	// enabling twice is a no-op
	if err := m.Enable("sample"); err != nil {
		t.Fatalf("unexpected error while re-enabling plugin: %s", err)
	}

	if err := m.Disable("sample"); err != nil {
		t.Fatalf("unexpected error while disabling plugin: %s", err)
	}
	if enabled, err := m.IsEnabled("sample"); err != nil || enabled {
		t.Errorf("plugin still enabled: %v, %s", enabled, err)
	}
	if m.Plugin("sample").Loaded {
		t.Errorf("disabled plugin still marked loaded")
	}
}

func TestManagerEnabledPersists(t *testing.T) {
	withHostAPIVersions(t, "3.0")
	dir := t.TempDir()
	writePluginDir(t, dir, "sample", testManifest("Sample", "3.0"))

	configFile := filepath.Join(t.TempDir(), "plugins.yaml")

	m := NewManager(configFile)
	if err := m.AddDirectory(dir, true); err != nil {
		t.Fatal(err)
	}
	if err := m.Enable("sample"); err != nil {
		t.Fatal(err)
	}

	// a fresh manager sees the persisted enabled set
	fresh := NewManager(configFile)
	if err := fresh.AddDirectory(dir, true); err != nil {
		t.Fatal(err)
	}

	enabled, err := fresh.EnabledPlugins()
	if err != nil {
		t.Fatalf("unexpected error while reading enabled plugins: %s", err)
	}
	if len(enabled) != 1 || enabled[0] != "sample" {
		t.Errorf("unexpected enabled plugins: %v", enabled)
	}

	if err := fresh.Activate(); err != nil {
		t.Fatalf("unexpected error while activating plugins: %s", err)
	}
	if !fresh.Plugin("sample").Loaded {
		t.Errorf("enabled plugin not loaded after activation")
	}
}

func TestManagerUninstall(t *testing.T) {
	withHostAPIVersions(t, "3.0")
	dir := t.TempDir()
	target := writePluginDir(t, dir, "sample", testManifest("Sample", "3.0"))

	m := newTestManager(t, dir)
	if err := m.Enable("sample"); err != nil {
		t.Fatal(err)
	}

	if err := m.Uninstall("sample"); err != nil {
		t.Fatalf("unexpected error while uninstalling plugin: %s", err)
	}

	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("plugin directory survived the uninstallation")
	}
	if m.Plugin("sample") != nil {
		t.Errorf("uninstalled plugin present in registry")
	}
	if enabled, err := m.IsEnabled("sample"); err != nil || enabled {
		t.Errorf("uninstalled plugin still enabled")
	}

	if err := m.Uninstall("sample"); err == nil {
		t.Errorf("unexpected success while uninstalling unknown plugin")
	}
}

func TestManagerUninstallInvalidName(t *testing.T) {
	withHostAPIVersions(t, "3.0")
	dir := t.TempDir()
	writePluginDir(t, dir, "sample", testManifest("Sample", "3.0"))

	m := newTestManager(t, dir)

	// names that would resolve outside the plugin directory are
	// rejected before anything is removed
	for _, name := range []string{"..", ".", "", filepath.Join("..", "sample")} {
		if err := m.Uninstall(name); err == nil {
			t.Errorf("unexpected success while uninstalling %q", name)
		}
	}

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("plugin directory removed: %s", err)
	}
	if m.Plugin("sample") == nil {
		t.Errorf("installed plugin missing after rejected uninstallation")
	}
}

func TestManagerRefresh(t *testing.T) {
	withHostAPIVersions(t, "3.0")
	dir := t.TempDir()

	m := newTestManager(t, dir)
	if len(m.Plugins()) != 0 {
		t.Fatalf("unexpected plugins in empty directory")
	}

	// plugins installed after the initial scan appear on refresh
	writePluginDir(t, dir, "late", testManifest("Late", "3.0"))
	if err := m.Refresh(); err != nil {
		t.Fatalf("unexpected error while refreshing: %s", err)
	}
	if m.Plugin("late") == nil {
		t.Errorf("late plugin missing after refresh")
	}
	if m.PrimaryDir() != dir {
		t.Errorf("primary directory lost after refresh: %s", m.PrimaryDir())
	}
}
