// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package ariafs provides functions to access aria's file system layout.
package ariafs

import (
	"os"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/ariatag/aria/pkg/alog"
)

const ariaDir = ".aria"

// cache contains the layout information for the current user
var cache struct {
	sync.Once
	configDir string // aria user configuration directory
}

// ConfigDir returns the directory where the aria user configuration
// and data is located.
func ConfigDir() string {
	cache.Do(func() {
		cache.configDir = configDir()
		alog.Debugf("Using aria directory %q", cache.configDir)
	})

	return cache.configDir
}

func configDir() string {
	usr, err := user.Current()
	if err != nil {
		alog.Warningf("Could not lookup the current user's information: %s", err)

		cwd, err := os.Getwd()
		if err != nil {
			alog.Warningf("Could not get current working directory: %s", err)
			return ariaDir
		}

		return filepath.Join(cwd, ariaDir)
	}

	return filepath.Join(usr.HomeDir, ariaDir)
}

// PluginDir returns the primary directory where user plugins are
// installed.
func PluginDir() string {
	return filepath.Join(ConfigDir(), "plugins")
}

// PluginConfigFile returns the path of the file recording which
// plugins are enabled.
func PluginConfigFile() string {
	return filepath.Join(ConfigDir(), "plugins.yaml")
}
