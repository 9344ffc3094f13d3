// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"errors"
	"testing"
)

func TestJoinErrors(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")

	if err := joinErrors(nil); err != nil {
		t.Errorf("unexpected error for empty list: %s", err)
	}

	// a single error is passed through unchanged
	if err := joinErrors([]error{first}); err != first {
		t.Errorf("unexpected error for single element list: %s", err)
	}

	err := joinErrors([]error{first, second})
	if err == nil || err.Error() != "first; second" {
		t.Errorf("unexpected joined error: %v", err)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  error
	}{
		{"clone error", &CloneError{URL: "https://example.org/owner/repo", Err: cause}},
		{"manifest error", &ManifestError{Dir: "/tmp/plugin", Err: cause}},
		{"copy error", &CopyError{Name: "sample", Target: "/tmp/plugins/sample", Err: cause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("error does not unwrap to its cause: %s", tt.err)
			}
		})
	}
}
