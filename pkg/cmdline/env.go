// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cmdline

import (
	"fmt"

	"github.com/ariatag/aria/pkg/alog"
	"github.com/spf13/pflag"
)

// EnvHandler sets a flag's value from an environment variable
type EnvHandler func(*pflag.Flag, string) error

// EnvSetValue writes to a string or slice flag if the CLI
// option/argument is unset and the environment variable is set
func EnvSetValue(flag *pflag.Flag, envvar string) error {
	if flag.Changed {
		return nil
	}

	if err := flag.Value.Set(envvar); err != nil {
		return fmt.Errorf("unable to set flag %s to value %s: %s", flag.Name, envvar, err)
	}

	flag.Changed = true
	alog.Debugf("Updated flag '%s' value to: %s", flag.Name, flag.Value)
	return nil
}

// EnvBool sets a bool flag if the CLI option is unset and env var is set
func EnvBool(flag *pflag.Flag, envvar string) error {
	if flag.Changed || envvar == "" {
		return nil
	}

	if err := flag.Value.Set(envvar); err != nil {
		if err := flag.Value.Set("true"); err != nil {
			return fmt.Errorf("unable to set flag %s to value %s: %s", flag.Name, envvar, err)
		}
	}

	flag.Changed = true
	alog.Debugf("Updated flag '%s' value to: %s", flag.Name, flag.Value)
	return nil
}
