// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package cmdline

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestEnvSetValue(t *testing.T) {
	var value string

	cmd := cobra.Command{}
	cmd.Flags().StringVar(&value, "set-string", "", "")

	flag := cmd.Flags().Lookup("set-string")

	if err := EnvSetValue(flag, "from-env"); err != nil {
		t.Error(err)
	}
	if value != "from-env" {
		t.Errorf("unexpected value returned: %s", value)
	}

	// a flag set on the command line is never overridden
	if err := EnvSetValue(flag, "ignored"); err != nil {
		t.Error(err)
	}
	if value != "from-env" {
		t.Errorf("unexpected value returned: %s", value)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		match    bool
	}{
		{"true value", "true", true},
		{"numeric true", "1", true},
		{"yes value", "yes", true},
		{"empty value", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value bool

			cmd := cobra.Command{}
			cmd.Flags().BoolVar(&value, "set-bool", false, "")

			flag := cmd.Flags().Lookup("set-bool")

			if err := EnvBool(flag, tt.envValue); err != nil {
				t.Error(err)
			}
			if value != tt.match {
				t.Errorf("unexpected value returned for %q: %v", tt.envValue, value)
			}
		})
	}
}
