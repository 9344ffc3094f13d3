// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package docs

// Plugin command usage.
const (
	PluginUse   string = `plugin [plugin options...]`
	PluginShort string = `Manage aria plugins`
	PluginLong  string = `
  The 'plugin' command allows you to manage aria plugins which provide
  add-on functionality to the default aria installation.`
	PluginExample string = `
  All group commands have their own help output:

  $ aria help plugin install
  $ aria plugin list --help`
)

// Plugin install command usage.
const (
	PluginInstallUse   string = `install <source>...`
	PluginInstallShort string = `Install plugins from repositories or local directories`
	PluginInstallLong  string = `
  The 'plugin install' command installs every plugin found in the given
  sources. A source is either the URL of a plugin repository, which will be
  cloned, or the path of a local directory. Plugins incompatible with the
  plugin API versions of this aria build are rejected. Installed plugins are
  enabled. When several sources are given a failing source does not prevent
  installation from the remaining ones.`
	PluginInstallExample string = `
  $ aria plugin install https://github.com/ariatag/aria-plugins.git
  $ aria plugin install ~/src/my-plugin
  $ aria plugin install --local ./plugins`
)

// Plugin uninstall command usage.
const (
	PluginUninstallUse   string = `uninstall <name>`
	PluginUninstallShort string = `Uninstall removes the named plugin from the user plugin directory`
	PluginUninstallLong  string = `
  The 'plugin uninstall' command disables the named plugin and removes it
  from the user plugin directory.`
	PluginUninstallExample string = `
  $ aria plugin uninstall lyrics-fetcher`
)

// Plugin list command usage.
const (
	PluginListUse   string = `list [list options...]`
	PluginListShort string = `List installed aria plugins`
	PluginListLong  string = `
  The 'plugin list' command lists the aria plugins installed in the user
  plugin directory.`
	PluginListExample string = `
  $ aria plugin list`
)

// Plugin enable command usage.
const (
	PluginEnableUse   string = `enable <name>`
	PluginEnableShort string = `Enable an installed aria plugin`
	PluginEnableLong  string = `
  The 'plugin enable' command allows a user to enable a plugin that has
  been disabled.`
	PluginEnableExample string = `
  $ aria plugin enable lyrics-fetcher`
)

// Plugin disable command usage.
const (
	PluginDisableUse   string = `disable <name>`
	PluginDisableShort string = `Disable an installed aria plugin`
	PluginDisableLong  string = `
  The 'plugin disable' command allows a user to disable a plugin that is
  currently enabled. Disabled plugins stay installed and can be enabled
  again.`
	PluginDisableExample string = `
  $ aria plugin disable lyrics-fetcher`
)

// Plugin inspect command usage.
const (
	PluginInspectUse   string = `inspect <name|dir>`
	PluginInspectShort string = `Inspect an aria plugin`
	PluginInspectLong  string = `
  The 'plugin inspect' command shows the manifest of a plugin, either by
  the name of an installed plugin or by the path of a plugin directory.`
	PluginInspectExample string = `
  $ aria plugin inspect lyrics-fetcher
  $ aria plugin inspect ~/src/my-plugin`
)
