// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/template"

	"github.com/ariatag/aria/docs"
	"github.com/ariatag/aria/internal/pkg/buildcfg"
	"github.com/ariatag/aria/internal/pkg/util/fs"
	"github.com/ariatag/aria/pkg/alog"
	"github.com/ariatag/aria/pkg/ariafs"
	"github.com/ariatag/aria/pkg/cmdline"
	"github.com/spf13/cobra"
)

const envPrefix = "ARIA_"

var cmdManager = cmdline.NewCommandManager(ariaCmd)

// aria command flags
var (
	debug   bool
	nocolor bool
	silent  bool
	verbose bool
	quiet   bool
)

// -d|--debug
var ariaDebugFlag = cmdline.Flag{
	ID:           "ariaDebugFlag",
	Value:        &debug,
	DefaultValue: false,
	Name:         "debug",
	ShortHand:    "d",
	Usage:        "print debugging information (highest verbosity)",
	EnvKeys:      []string{"DEBUG"},
}

// --nocolor
var ariaNoColorFlag = cmdline.Flag{
	ID:           "ariaNoColorFlag",
	Value:        &nocolor,
	DefaultValue: false,
	Name:         "nocolor",
	Usage:        "print without color output (default False)",
	EnvKeys:      []string{"NOCOLOR"},
}

// -s|--silent
var ariaSilentFlag = cmdline.Flag{
	ID:           "ariaSilentFlag",
	Value:        &silent,
	DefaultValue: false,
	Name:         "silent",
	ShortHand:    "s",
	Usage:        "only print errors",
	EnvKeys:      []string{"SILENT"},
}

// -q|--quiet
var ariaQuietFlag = cmdline.Flag{
	ID:           "ariaQuietFlag",
	Value:        &quiet,
	DefaultValue: false,
	Name:         "quiet",
	ShortHand:    "q",
	Usage:        "suppress normal output",
	EnvKeys:      []string{"QUIET"},
}

// -v|--verbose
var ariaVerboseFlag = cmdline.Flag{
	ID:           "ariaVerboseFlag",
	Value:        &verbose,
	DefaultValue: false,
	Name:         "verbose",
	ShortHand:    "v",
	Usage:        "print additional information",
	EnvKeys:      []string{"VERBOSE"},
}

func init() {
	ariaCmd.Flags().SetInterspersed(false)
	ariaCmd.PersistentFlags().SetInterspersed(false)

	templateFuncs := template.FuncMap{
		"TraverseParentsUses": TraverseParentsUses,
	}
	cobra.AddTemplateFuncs(templateFuncs)

	ariaCmd.SetHelpTemplate(docs.HelpTemplate)
	ariaCmd.SetUsageTemplate(docs.UseTemplate)

	vt := fmt.Sprintf("%s version {{printf \"%%s\" .Version}}\n", buildcfg.PACKAGE_NAME)
	ariaCmd.SetVersionTemplate(vt)

	cmdManager.RegisterFlagForCmd(&ariaDebugFlag, ariaCmd)
	cmdManager.RegisterFlagForCmd(&ariaNoColorFlag, ariaCmd)
	cmdManager.RegisterFlagForCmd(&ariaSilentFlag, ariaCmd)
	cmdManager.RegisterFlagForCmd(&ariaQuietFlag, ariaCmd)
	cmdManager.RegisterFlagForCmd(&ariaVerboseFlag, ariaCmd)

	cmdManager.RegisterCmd(VersionCmd)
}

func setLogLevel() {
	var level int

	switch {
	case debug:
		level = 3
	case verbose:
		level = 2
	case quiet:
		level = -1
	case silent:
		level = -3
	default:
		level = 1
	}

	alog.SetLevel(level)
}

func setLogColor() {
	if nocolor {
		alog.DisableColor()
	}
}

// createConfDir tries to create the user's configuration directory and
// handles messages and/or errors
func createConfDir(d string) {
	if err := fs.Mkdir(d, os.ModePerm); err != nil {
		if os.IsExist(err) {
			alog.Debugf("%s already exists. Not creating.", d)
		} else {
			alog.Debugf("Could not create %s: %s", d, err)
		}
	} else {
		alog.Debugf("Created %s", d)
	}
}

// ariaCmd is the base command when called without any subcommands
var ariaCmd = &cobra.Command{
	TraverseChildren:      true,
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmdline.CommandError("invalid command")
	},

	Use:           docs.AriaUse,
	Version:       buildcfg.PACKAGE_VERSION,
	Short:         docs.AriaShort,
	Long:          docs.AriaLong,
	Example:       docs.AriaExample,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	if err := cmdManager.UpdateCmdFlagFromEnv(envPrefix); err != nil {
		return err
	}
	setLogLevel()
	setLogColor()
	createConfDir(ariafs.ConfigDir())
	return nil
}

// ExecuteAria adds all child commands to the root command and sets
// flags appropriately. This is called by main.main(). It only needs to
// happen once to the root command.
func ExecuteAria() {
	// set persistent pre run function here to avoid initialization
	// loop error
	ariaCmd.PersistentPreRunE = persistentPreRun

	// any error reported by the command manager is considered fatal
	if errs := cmdManager.GetError(); len(errs) > 0 {
		for _, e := range errs {
			alog.Errorf("%s", e)
		}
		alog.Fatalf("CLI command manager reported %d error(s)", len(errs))
	}

	if cmd, err := ariaCmd.ExecuteC(); err != nil {
		name := cmd.Name()
		switch err.(type) {
		case cmdline.FlagError:
			usage := cmd.Flags().FlagUsagesWrapped(getColumns())
			ariaCmd.Printf("Error for command %q: %s\n\n", name, err)
			ariaCmd.Printf("Options for %s command:\n\n%s\n", name, usage)
		case cmdline.CommandError:
			ariaCmd.Println(cmd.UsageString())
		default:
			ariaCmd.Printf("Error for command %q: %s\n\n", name, err)
			ariaCmd.Println(cmd.UsageString())
		}
		ariaCmd.Printf("Run '%s --help' for more detailed usage information.\n",
			cmd.CommandPath())
		os.Exit(1)
	}
}

// getColumns returns the width used to wrap flag usage strings.
func getColumns() int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return 80
}

// TraverseParentsUses walks the parent commands and outputs a properly
// formatted use string
func TraverseParentsUses(cmd *cobra.Command) string {
	if cmd.HasParent() {
		return TraverseParentsUses(cmd.Parent()) + cmd.Use + " "
	}

	return cmd.Use + " "
}

// VersionCmd displays the installed aria version
var VersionCmd = &cobra.Command{
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildcfg.PACKAGE_VERSION)
	},

	Use:   docs.VersionUse,
	Short: docs.VersionShort,
}
