// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cmdline

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag holds information about a command flag
type Flag struct {
	ID           string
	Value        interface{}
	DefaultValue interface{}
	Name         string
	ShortHand    string
	Usage        string
	Deprecated   string
	Hidden       bool
	EnvKeys      []string
	EnvHandler   EnvHandler
}

// flagManager stores registered flags indexed by flag ID
type flagManager struct {
	flags map[string]*Flag
}

func newFlagManager() *flagManager {
	return &flagManager{
		flags: make(map[string]*Flag),
	}
}

func (m *flagManager) setFlagOptions(flag *Flag, cmd *cobra.Command) error {
	if len(flag.EnvKeys) > 0 {
		if err := cmd.Flags().SetAnnotation(flag.Name, "envkey", flag.EnvKeys); err != nil {
			return fmt.Errorf("could not set envkey annotation: %s", err)
		}
	}
	if err := cmd.Flags().SetAnnotation(flag.Name, "ID", []string{flag.ID}); err != nil {
		return fmt.Errorf("could not set ID annotation: %s", err)
	}
	if flag.Deprecated != "" {
		if err := cmd.Flags().MarkDeprecated(flag.Name, flag.Deprecated); err != nil {
			return fmt.Errorf("could not mark flag as deprecated: %s", err)
		}
	}
	if flag.Hidden {
		if err := cmd.Flags().MarkHidden(flag.Name); err != nil {
			return fmt.Errorf("could not mark flag as hidden: %s", err)
		}
	}
	return nil
}

func (m *flagManager) registerFlagForCmd(flag *Flag, cmds ...*cobra.Command) error {
	for _, c := range cmds {
		if c == nil {
			return fmt.Errorf("nil command provided")
		}
	}
	switch t := flag.DefaultValue.(type) {
	case string:
		if flag.EnvHandler == nil && len(flag.EnvKeys) > 0 {
			flag.EnvHandler = EnvSetValue
		}
		if err := m.registerStringVar(flag, cmds); err != nil {
			return err
		}
	case []string:
		if flag.EnvHandler == nil && len(flag.EnvKeys) > 0 {
			flag.EnvHandler = EnvSetValue
		}
		if err := m.registerStringSliceVar(flag, cmds); err != nil {
			return err
		}
	case bool:
		if flag.EnvHandler == nil && len(flag.EnvKeys) > 0 {
			flag.EnvHandler = EnvBool
		}
		if err := m.registerBoolVar(flag, cmds); err != nil {
			return err
		}
	default:
		return fmt.Errorf("flags of type %T are not supported", t)
	}
	m.flags[flag.ID] = flag
	return nil
}

func (m *flagManager) registerStringVar(flag *Flag, cmds []*cobra.Command) error {
	for _, c := range cmds {
		if flag.ShortHand != "" {
			c.Flags().StringVarP(flag.Value.(*string), flag.Name, flag.ShortHand, flag.DefaultValue.(string), flag.Usage)
		} else {
			c.Flags().StringVar(flag.Value.(*string), flag.Name, flag.DefaultValue.(string), flag.Usage)
		}
		if err := m.setFlagOptions(flag, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *flagManager) registerStringSliceVar(flag *Flag, cmds []*cobra.Command) error {
	for _, c := range cmds {
		if flag.ShortHand != "" {
			c.Flags().StringSliceVarP(flag.Value.(*[]string), flag.Name, flag.ShortHand, flag.DefaultValue.([]string), flag.Usage)
		} else {
			c.Flags().StringSliceVar(flag.Value.(*[]string), flag.Name, flag.DefaultValue.([]string), flag.Usage)
		}
		if err := m.setFlagOptions(flag, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *flagManager) registerBoolVar(flag *Flag, cmds []*cobra.Command) error {
	for _, c := range cmds {
		if flag.ShortHand != "" {
			c.Flags().BoolVarP(flag.Value.(*bool), flag.Name, flag.ShortHand, flag.DefaultValue.(bool), flag.Usage)
		} else {
			c.Flags().BoolVar(flag.Value.(*bool), flag.Name, flag.DefaultValue.(bool), flag.Usage)
		}
		if err := m.setFlagOptions(flag, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *flagManager) updateFlagFromEnv(cmd *cobra.Command, prefix string) (errs []error) {
	fn := func(flag *pflag.Flag) {
		envKeys, ok := flag.Annotations["envkey"]
		if !ok {
			return
		}
		id, ok := flag.Annotations["ID"]
		if !ok {
			return
		}
		mflag, ok := m.flags[id[0]]
		if !ok {
			return
		}
		for _, key := range envKeys {
			val, set := os.LookupEnv(prefix + key)
			if !set {
				continue
			}
			if mflag.EnvHandler != nil {
				if err := mflag.EnvHandler(flag, val); err != nil {
					errs = append(errs, err)
					break
				}
			}
		}
	}

	// visit parent command first
	cmd.Flags().VisitAll(fn)

	// then each child command
	for _, c := range cmd.Commands() {
		c.Flags().VisitAll(fn)
	}
	return errs
}
