// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

// DisablePlugin disables the named plugin.
func DisablePlugin(name string) error {
	manager, err := newPluginManager()
	if err != nil {
		return err
	}
	return manager.Disable(name)
}
