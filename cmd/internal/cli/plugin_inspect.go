// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"os"

	"github.com/ariatag/aria/docs"
	"github.com/ariatag/aria/internal/app/aria"
	"github.com/ariatag/aria/pkg/alog"
	"github.com/spf13/cobra"
)

// pluginInspectCmd shows the manifest of an installed plugin or of a
// plugin directory.
//
// aria plugin inspect <name|dir>
var pluginInspectCmd = &cobra.Command{
	Run: func(cmd *cobra.Command, args []string) {
		if err := aria.InspectPlugin(os.Stdout, args[0]); err != nil {
			alog.Fatalf("Failed to inspect plugin %q: %s.", args[0], err)
		}
	},
	DisableFlagsInUseLine: true,
	Args:                  cobra.ExactArgs(1),

	Use:     docs.PluginInspectUse,
	Short:   docs.PluginInspectShort,
	Long:    docs.PluginInspectLong,
	Example: docs.PluginInspectExample,
}
