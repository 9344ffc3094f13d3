// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

import (
	"fmt"
	"io"

	"github.com/ariatag/aria/internal/pkg/plugin"
	"github.com/fatih/color"
)

// ListPlugins writes the table of installed plugins to w.
func ListPlugins(w io.Writer) error {
	manager, err := newPluginManager()
	if err != nil {
		return err
	}
	return listPlugins(w, manager)
}

func listPlugins(w io.Writer, manager *plugin.Manager) error {
	plugins := manager.Plugins()
	if len(plugins) == 0 {
		fmt.Fprintln(w, "There are no plugins installed.")
		return nil
	}

	enabled, err := manager.EnabledPlugins()
	if err != nil {
		return err
	}
	enabledSet := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		enabledSet[name] = true
	}

	yes := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(w, "ENABLED  NAME                 VERSION\n")
	for _, p := range plugins {
		// pad before colorizing, the escape sequences would throw
		// off the column width otherwise
		state := fmt.Sprintf("%7s", "no")
		if enabledSet[p.Name] {
			state = yes(fmt.Sprintf("%7s", "yes"))
		}
		fmt.Fprintf(w, "%s  %-20s %s\n", state, p.Name, p.Manifest.Version)
	}

	return nil
}
