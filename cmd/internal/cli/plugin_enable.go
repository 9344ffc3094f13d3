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

// pluginEnableCmd enables the named plugin.
//
// aria plugin enable <name>
var pluginEnableCmd = &cobra.Command{
	Run: func(cmd *cobra.Command, args []string) {
		if err := aria.EnablePlugin(args[0]); err != nil {
			alog.Fatalf("Failed to enable plugin %q: %s.", args[0], err)
		}
	},
	DisableFlagsInUseLine: true,
	Args:                  cobra.ExactArgs(1),

	Use:     docs.PluginEnableUse,
	Short:   docs.PluginEnableShort,
	Long:    docs.PluginEnableLong,
	Example: docs.PluginEnableExample,
}
