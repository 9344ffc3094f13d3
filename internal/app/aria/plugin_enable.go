// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

// EnablePlugin enables the named plugin.
func EnablePlugin(name string) error {
	manager, err := newPluginManager()
	if err != nil {
		return err
	}
	return manager.Enable(name)
}
