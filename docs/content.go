// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package docs provides the command usage texts for help and man
// pages.
package docs

// Global content for help and man pages
const (

	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	// main aria command
	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	AriaUse   string = `aria [global options...]`
	AriaShort string = `
Music tagging for large libraries`
	AriaLong string = `
  Aria looks up and writes metadata for music files. Its behavior can be
  extended with plugins installed from plugin repositories or local
  directories.`
	AriaExample string = `
  $ aria help <command> [<subcommand>]
  $ aria help plugin install`

	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	// version
	// ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
	VersionUse   string = `version`
	VersionShort string = `Show the version for aria`
)

// HelpTemplate is the template used by the help command.
const HelpTemplate string = `{{.Short}}

Usage:
  {{TraverseParentsUses . | trimTrailingWhitespaces}}

Description:{{.Long}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasExample}}

Examples:{{.Example}}{{end}}

For additional help or support, please visit https://ariatag.github.io/
`

// UseTemplate is the template used for the usage output.
const UseTemplate string = `Usage:
  {{TraverseParentsUses . | trimTrailingWhitespaces}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

Run '{{.CommandPath}} --help' for more detailed usage information.
`
