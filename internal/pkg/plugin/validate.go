// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ariatag/aria/pkg/alog"
	pluginapi "github.com/ariatag/aria/pkg/plugin"
)

// validPluginName reports whether name is usable as a plugin directory
// name below the plugins root. Names that are empty, refer to the
// current or parent directory or contain a path separator would make
// installation or removal operate outside the plugins root.
func validPluginName(name string) bool {
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return false
	}
	return !strings.ContainsRune(name, filepath.Separator)
}

// Validate checks that dir is a plugin package whose manifest parses
// and is compatible with this aria build. It returns the plugin name,
// which is the directory base name and determines the installation
// path. The directory is resolved to an absolute path first so that
// relative sources such as "." yield the real directory name instead
// of a path element that would escape the plugins root.
func Validate(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &ManifestError{Dir: dir, Err: err}
	}

	if !IsPluginDir(abs) {
		return "", &ManifestError{Dir: dir, Err: errors.New("not a plugin package")}
	}

	manifest, err := pluginapi.LoadManifest(abs)
	if err != nil {
		return "", &ManifestError{Dir: dir, Err: err}
	}

	declared, err := manifest.APIVersions()
	if err != nil {
		return "", &ManifestError{Dir: dir, Err: err}
	}

	name := filepath.Base(abs)
	if !validPluginName(name) {
		return "", &ManifestError{Dir: dir, Err: fmt.Errorf("cannot derive a plugin name from %q", dir)}
	}

	if !isCompatible(declared) {
		return "", &IncompatibleError{Name: name, Declared: manifest.API}
	}

	alog.Debugf("Plugin %q is compatible with aria API versions %v", name, compatibleVersions(declared))
	return name, nil
}
