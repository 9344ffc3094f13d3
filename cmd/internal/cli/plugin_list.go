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

// pluginListCmd lists the plugins installed in the user plugin
// directory.
//
// aria plugin list
var pluginListCmd = &cobra.Command{
	Run: func(cmd *cobra.Command, args []string) {
		if err := aria.ListPlugins(os.Stdout); err != nil {
			alog.Fatalf("Failed to list plugins: %s.", err)
		}
	},
	DisableFlagsInUseLine: true,
	Args:                  cobra.ExactArgs(0),

	Use:     docs.PluginListUse,
	Short:   docs.PluginListShort,
	Long:    docs.PluginListLong,
	Example: docs.PluginListExample,
}
