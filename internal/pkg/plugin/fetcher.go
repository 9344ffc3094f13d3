// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ariatag/aria/internal/pkg/util/bin"
	"github.com/ariatag/aria/pkg/alog"
)

// Fetcher materializes a remote installation source into a local
// directory.
type Fetcher interface {
	Fetch(ctx context.Context, repoURL, destDir string) error
}

// gitFetcher clones repositories with the git binary found on the
// host.
type gitFetcher struct{}

// NewGitFetcher returns the default git backed Fetcher.
func NewGitFetcher() Fetcher {
	return gitFetcher{}
}

func (gitFetcher) Fetch(ctx context.Context, repoURL, destDir string) error {
	gitPath, err := bin.FindBin("git")
	if err != nil {
		return &CloneError{URL: repoURL, Err: fmt.Errorf("git is required to install plugins from repositories: %s", err)}
	}

	// git expects the destination to not exist
	if err := os.MkdirAll(filepath.Dir(destDir), 0755); err != nil {
		return &CloneError{URL: repoURL, Err: err}
	}
	if err := os.RemoveAll(destDir); err != nil {
		return &CloneError{URL: repoURL, Err: err}
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, gitPath, "clone", "--depth", "1", "--", repoURL, destDir)
	// clone output is discarded when running silent
	cmd.Stdout = alog.Writer()
	cmd.Stderr = &stderr

	alog.Debugf("Running %v", cmd.Args)
	if err := cmd.Run(); err != nil {
		msg := firstLine(stderr.String())
		if msg == "" {
			return &CloneError{URL: repoURL, Err: err}
		}
		return &CloneError{URL: repoURL, Err: fmt.Errorf("%s: %s", err, msg)}
	}

	alog.Verbosef("Cloned repository %s to %s", repoURL, destDir)
	return nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
