// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import "testing"

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		match string
	}{
		{"empty", "", ""},
		{"single line", "fatal: repository not found", "fatal: repository not found"},
		{"trailing newline", "fatal: repository not found\n", "fatal: repository not found"},
		{"multiple lines", "first\nsecond\nthird", "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstLine(tt.in); got != tt.match {
				t.Errorf("unexpected result: returned %q instead of %q", got, tt.match)
			}
		})
	}
}
