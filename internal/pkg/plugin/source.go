// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/ariatag/aria/internal/pkg/util/fs"
)

// SourceKind discriminates installation source types.
type SourceKind int

const (
	// SourceRepo is a remote git repository URL.
	SourceRepo SourceKind = iota
	// SourceDir is a local directory.
	SourceDir
)

// Source is an installation source supplied by the user, either a
// remote repository URL or a local directory.
type Source struct {
	Kind  SourceKind
	Value string
}

func (s Source) String() string { return s.Value }

// repoURLPattern matches http(s) URLs of the form
// host[:port]/owner/repo[.git], with an optional userinfo part.
var repoURLPattern = regexp.MustCompile(`^https?://(?:[^@/]+@)?(?:[^:/]+)(?::\d+)?/[^/]+/[^/]+(?:\.git)?/?$`)

// IsRepoURL reports whether s looks like a remote plugin repository
// URL aria can clone from.
func IsRepoURL(s string) bool {
	if s == "" {
		return false
	}
	parsed, err := url.Parse(s)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}
	return repoURLPattern.MatchString(s)
}

// DetectSource classifies the user supplied string as a repository URL
// or a local directory.
func DetectSource(s string) (Source, error) {
	if fs.IsDir(s) {
		return Source{Kind: SourceDir, Value: s}, nil
	}
	if IsRepoURL(s) {
		return Source{Kind: SourceRepo, Value: s}, nil
	}
	return Source{}, fmt.Errorf("%q is neither a local directory nor a repository URL", s)
}
