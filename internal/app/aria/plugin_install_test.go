// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

import (
	"testing"

	"github.com/ariatag/aria/internal/pkg/plugin"
)

func TestDetectSources(t *testing.T) {
	dir := t.TempDir()

	detected, err := detectSources([]string{dir, "https://example.org/owner/repo"}, InstallPluginsOptions{})
	if err != nil {
		t.Fatalf("unexpected error while detecting sources: %s", err)
	}
	if detected[0].Kind != plugin.SourceDir || detected[1].Kind != plugin.SourceRepo {
		t.Errorf("unexpected source kinds: %+v", detected)
	}

	if _, err := detectSources([]string{"not-a-source"}, InstallPluginsOptions{}); err == nil {
		t.Errorf("unexpected success for undetectable source")
	}

	// overrides skip detection entirely
	detected, err = detectSources([]string{"not-a-source"}, InstallPluginsOptions{ForceLocal: true})
	if err != nil || detected[0].Kind != plugin.SourceDir {
		t.Errorf("unexpected result with ForceLocal: %+v, %s", detected, err)
	}
	detected, err = detectSources([]string{"not-a-source"}, InstallPluginsOptions{ForceRepo: true})
	if err != nil || detected[0].Kind != plugin.SourceRepo {
		t.Errorf("unexpected result with ForceRepo: %+v, %s", detected, err)
	}
}
