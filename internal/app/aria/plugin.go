// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

import (
	"github.com/ariatag/aria/internal/pkg/plugin"
	"github.com/ariatag/aria/pkg/ariafs"
)

// newPluginManager returns a plugin manager over the user plugin
// directory.
func newPluginManager() (*plugin.Manager, error) {
	m := plugin.NewManager(ariafs.PluginConfigFile())
	if err := m.AddDirectory(ariafs.PluginDir(), true); err != nil {
		return nil, err
	}
	return m, nil
}
