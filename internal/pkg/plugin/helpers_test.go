// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	pluginapi "github.com/ariatag/aria/pkg/plugin"
)

// testManifest returns manifest content declaring the given API
// versions.
func testManifest(name string, api ...string) string {
	m := fmt.Sprintf("name = %q\nauthors = [\"Test Author\"]\nversion = \"1.0.0\"\napi = [", name)
	for i, v := range api {
		if i > 0 {
			m += ", "
		}
		m += fmt.Sprintf("%q", v)
	}
	return m + "]\n"
}

// writePluginDir creates a plugin package named name below root and
// returns its path.
func writePluginDir(t *testing.T, root, name, manifest string) string {
	t.Helper()

	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, pluginapi.EntryPointName), []byte("-- entry point\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, pluginapi.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// withHostAPIVersions pins the supported API version set for the
// duration of the test.
func withHostAPIVersions(t *testing.T, versions ...string) {
	t.Helper()

	old := setHostAPIVersions(versions)
	t.Cleanup(func() { hostAPIVersions = old })
}
