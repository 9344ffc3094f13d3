// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"github.com/ariatag/aria/docs"
	"github.com/ariatag/aria/internal/app/aria"
	"github.com/ariatag/aria/pkg/alog"
	"github.com/ariatag/aria/pkg/cmdline"
	"github.com/spf13/cobra"
)

var (
	installLocal bool
	installRepo  bool
)

// --local
var pluginInstallLocalFlag = cmdline.Flag{
	ID:           "pluginInstallLocalFlag",
	Value:        &installLocal,
	DefaultValue: false,
	Name:         "local",
	Usage:        "treat all sources as local directories",
}

// --repo
var pluginInstallRepoFlag = cmdline.Flag{
	ID:           "pluginInstallRepoFlag",
	Value:        &installRepo,
	DefaultValue: false,
	Name:         "repo",
	Usage:        "treat all sources as repository URLs",
}

// pluginInstallCmd installs all plugins found in the given sources,
// each either a repository URL or a local directory.
//
// aria plugin install <source>...
var pluginInstallCmd = &cobra.Command{
	Run: func(cmd *cobra.Command, args []string) {
		if installLocal && installRepo {
			alog.Fatalf("Options --local and --repo are mutually exclusive.")
		}
		opts := aria.InstallPluginsOptions{
			ShowProgressBar: !quiet && !silent && len(args) > 1,
			ForceLocal:      installLocal,
			ForceRepo:       installRepo,
		}
		if err := aria.InstallPlugins(cmd.Context(), args, opts); err != nil {
			alog.Fatalf("Failed to install plugins: %s.", err)
		}
	},
	DisableFlagsInUseLine: true,
	Args:                  cobra.MinimumNArgs(1),

	Use:     docs.PluginInstallUse,
	Short:   docs.PluginInstallShort,
	Long:    docs.PluginInstallLong,
	Example: docs.PluginInstallExample,
}
