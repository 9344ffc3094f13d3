// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

import (
	"fmt"
	"io"
	"strings"

	"github.com/ariatag/aria/internal/pkg/plugin"
	"github.com/ariatag/aria/internal/pkg/util/fs"
	pluginapi "github.com/ariatag/aria/pkg/plugin"
	"github.com/fatih/color"
)

// descriptionPreviewChars bounds the description shown by inspect.
const descriptionPreviewChars = 100

// InspectPlugin writes the manifest details of a plugin to w. The
// argument is either the name of an installed plugin or the path of a
// plugin directory.
func InspectPlugin(w io.Writer, nameOrDir string) error {
	if fs.IsDir(nameOrDir) {
		return inspectPluginDir(w, nameOrDir)
	}

	manager, err := newPluginManager()
	if err != nil {
		return err
	}
	return inspectPlugin(w, manager, nameOrDir)
}

func inspectPluginDir(w io.Writer, dir string) error {
	if !plugin.IsPluginDir(dir) {
		return fmt.Errorf("%s is not a plugin directory", dir)
	}
	manifest, err := pluginapi.LoadManifest(dir)
	if err != nil {
		return err
	}
	return writeManifest(w, manifest, dir)
}

func inspectPlugin(w io.Writer, manager *plugin.Manager, name string) error {
	p := manager.Plugin(name)
	if p == nil {
		return fmt.Errorf("plugin %q is not installed", name)
	}
	return writeManifest(w, p.Manifest, p.Dir)
}

func writeManifest(w io.Writer, manifest *pluginapi.Manifest, dir string) error {
	label := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", label("Name:"), manifest.DisplayName("en"))
	if len(manifest.Authors) > 0 {
		fmt.Fprintf(w, "%s %s\n", label("Authors:"), strings.Join(manifest.Authors, ", "))
	}
	if desc := manifest.DescriptionPreview("en", descriptionPreviewChars); desc != "" {
		fmt.Fprintf(w, "%s %s\n", label("Description:"), desc)
	}
	if len(manifest.API) > 0 {
		fmt.Fprintf(w, "%s %s\n", label("API Versions:"), strings.Join(manifest.API, ", "))
	}
	if manifest.License != "" {
		fmt.Fprintf(w, "%s %s\n", label("License:"), manifest.License)
	}
	if manifest.Version != "" {
		fmt.Fprintf(w, "%s %s\n", label("Version:"), manifest.Version)
	}
	fmt.Fprintf(w, "%s %s\n", label("Directory:"), dir)

	return nil
}
