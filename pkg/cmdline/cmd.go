// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cmdline

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommandError describes an invalid command invocation.
type CommandError string

func (e CommandError) Error() string { return string(e) }

// FlagError describes a flag that could not be registered or updated.
type FlagError string

func (e FlagError) Error() string { return string(e) }

// CommandManager holds the root command and manages flag
// registration for the whole command tree.
type CommandManager struct {
	rootCmd *cobra.Command
	errPool []error
	fm      *flagManager
}

// NewCommandManager instantiates a CommandManager
func NewCommandManager(rootCmd *cobra.Command) *CommandManager {
	if rootCmd == nil {
		panic("nil root command passed")
	}
	return &CommandManager{
		rootCmd: rootCmd,
		fm:      newFlagManager(),
	}
}

func (m *CommandManager) pushError(f string, a ...interface{}) {
	m.errPool = append(m.errPool, fmt.Errorf(f, a...))
}

// GetError returns the error pool
func (m *CommandManager) GetError() []error {
	return m.errPool
}

// RegisterCmd registers a child command for the root command
func (m *CommandManager) RegisterCmd(cmd *cobra.Command) {
	// panic here because it's a misuse of API and generally from
	// global context or init() functions
	if cmd == nil {
		panic("nil command passed")
	}
	m.rootCmd.AddCommand(cmd)
	cmd.Flags().SetInterspersed(false)
}

// RegisterSubCmd registers a child command for parent command given as argument
func (m *CommandManager) RegisterSubCmd(parentCmd, childCmd *cobra.Command) {
	if parentCmd == nil {
		panic("nil parent command passed")
	} else if childCmd == nil {
		panic("nil child command passed")
	}
	parentCmd.AddCommand(childCmd)
	childCmd.Flags().SetInterspersed(false)
}

// GetRootCmd returns the root command
func (m *CommandManager) GetRootCmd() *cobra.Command {
	return m.rootCmd
}

// GetCmd returns the named command associated with root command
func (m *CommandManager) GetCmd(name string) *cobra.Command {
	for _, c := range m.rootCmd.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// RegisterFlagForCmd registers a flag for one or more commands
func (m *CommandManager) RegisterFlagForCmd(flag *Flag, cmds ...*cobra.Command) {
	if err := m.fm.registerFlagForCmd(flag, cmds...); err != nil {
		m.pushError("%s", err)
	}
}

// UpdateCmdFlagFromEnv updates flag values from environment variables
// associated with all flags belonging to the command tree. It is meant
// to run after flag parsing so explicit command line options win.
func (m *CommandManager) UpdateCmdFlagFromEnv(prefix string) error {
	var errs []error
	errs = append(errs, m.fm.updateFlagFromEnv(m.rootCmd, prefix)...)

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}

	msg := ""
	for i, e := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return FlagError(msg)
}
