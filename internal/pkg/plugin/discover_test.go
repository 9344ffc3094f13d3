// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	pluginapi "github.com/ariatag/aria/pkg/plugin"
)

func TestIsPluginDir(t *testing.T) {
	root := t.TempDir()

	dir := writePluginDir(t, root, "sample", testManifest("Sample", "3.0"))
	if !IsPluginDir(dir) {
		t.Errorf("unexpected result for plugin package %s", dir)
	}

	// entry point without manifest
	bare := filepath.Join(root, "bare")
	if err := os.MkdirAll(bare, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bare, pluginapi.EntryPointName), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if IsPluginDir(bare) {
		t.Errorf("unexpected result for directory without manifest")
	}

	if IsPluginDir(filepath.Join(root, "missing")) {
		t.Errorf("unexpected result for missing directory")
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	first := writePluginDir(t, root, "first", testManifest("First", "3.0"))
	second := writePluginDir(t, filepath.Join(root, "nested"), "second", testManifest("Second", "3.0"))

	// plugin packages below .git must not be discovered
	writePluginDir(t, filepath.Join(root, ".git"), "ignored", testManifest("Ignored", "3.0"))

	// an unrelated directory is not a candidate
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}

	candidates, err := Discover(root)
	if err != nil {
		t.Fatalf("unexpected error while discovering plugins: %s", err)
	}

	sort.Strings(candidates)
	match := []string{first, second}
	sort.Strings(match)
	if !reflect.DeepEqual(candidates, match) {
		t.Errorf("unexpected candidates: returned %v instead of %v", candidates, match)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("unexpected success for missing root")
	}
}
