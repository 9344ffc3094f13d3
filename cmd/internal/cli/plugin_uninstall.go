// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"github.com/ariatag/aria/docs"
	"github.com/ariatag/aria/internal/app/aria"
	"github.com/ariatag/aria/pkg/alog"
	"github.com/spf13/cobra"
)

// pluginUninstallCmd removes the named plugin from the user plugin
// directory.
//
// aria plugin uninstall <name>
var pluginUninstallCmd = &cobra.Command{
	Run: func(cmd *cobra.Command, args []string) {
		if err := aria.UninstallPlugin(args[0]); err != nil {
			alog.Fatalf("Failed to uninstall plugin %q: %s.", args[0], err)
		}
	},
	DisableFlagsInUseLine: true,
	Args:                  cobra.ExactArgs(1),

	Use:     docs.PluginUninstallUse,
	Short:   docs.PluginUninstallShort,
	Long:    docs.PluginUninstallLong,
	Example: docs.PluginUninstallExample,
}
