// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

import "fmt"

// UninstallPlugin removes the named plugin from the user plugin
// directory.
func UninstallPlugin(name string) error {
	manager, err := newPluginManager()
	if err != nil {
		return err
	}
	if err := manager.Uninstall(name); err != nil {
		return err
	}

	fmt.Printf("Uninstalled plugin %s\n", name)
	return nil
}
