// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"github.com/ariatag/aria/docs"
	"github.com/ariatag/aria/pkg/cmdline"
	"github.com/spf13/cobra"
)

func init() {
	cmdManager.RegisterCmd(pluginCmd)

	cmdManager.RegisterSubCmd(pluginCmd, pluginListCmd)
	cmdManager.RegisterSubCmd(pluginCmd, pluginInstallCmd)
	cmdManager.RegisterSubCmd(pluginCmd, pluginUninstallCmd)
	cmdManager.RegisterSubCmd(pluginCmd, pluginEnableCmd)
	cmdManager.RegisterSubCmd(pluginCmd, pluginDisableCmd)
	cmdManager.RegisterSubCmd(pluginCmd, pluginInspectCmd)

	cmdManager.RegisterFlagForCmd(&pluginInstallLocalFlag, pluginInstallCmd)
	cmdManager.RegisterFlagForCmd(&pluginInstallRepoFlag, pluginInstallCmd)
}

// pluginCmd is the root command for all plugin related functionalities
// which are exposed via the CLI.
//
// aria plugin [...]
var pluginCmd = &cobra.Command{
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmdline.CommandError("invalid command")
	},
	DisableFlagsInUseLine: true,

	Use:           docs.PluginUse,
	Short:         docs.PluginShort,
	Long:          docs.PluginLong,
	Example:       docs.PluginExample,
	Aliases:       []string{"plugins"},
	SilenceErrors: true,
}
