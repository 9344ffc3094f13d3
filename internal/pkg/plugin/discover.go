// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"os"
	"path/filepath"

	"github.com/ariatag/aria/internal/pkg/util/fs"
	pluginapi "github.com/ariatag/aria/pkg/plugin"
)

// IsPluginDir reports whether dir is a plugin package, a directory
// containing both the plugin entry point and a manifest.
func IsPluginDir(dir string) bool {
	return fs.IsFile(filepath.Join(dir, pluginapi.EntryPointName)) &&
		fs.IsFile(filepath.Join(dir, pluginapi.ManifestName))
}

// Discover walks the tree rooted at root and returns all plugin
// package directories found within.
func Discover(root string) ([]string, error) {
	var candidates []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if info.Name() == ".git" {
			return filepath.SkipDir
		}
		if IsPluginDir(path) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}
