// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoPlugins is returned when an installation source contains no
	// plugin package at all.
	ErrNoPlugins = errors.New("no plugins found")

	// ErrBusy is returned when an installation is submitted while a
	// previous one is still running.
	ErrBusy = errors.New("a plugin installation is already in progress")
)

// CloneError reports a failure to clone a remote plugin repository.
type CloneError struct {
	URL string
	Err error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("failed cloning %s: %s", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error { return e.Err }

// ManifestError reports a plugin directory with a missing or invalid
// manifest.
type ManifestError struct {
	Dir string
	Err error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("invalid plugin manifest in %s: %s", e.Dir, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// IncompatibleError reports a plugin whose declared API versions have
// no overlap with the versions supported by this aria build.
type IncompatibleError struct {
	Name     string
	Declared []string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("plugin %q is not compatible with this version of aria (plugin requires API versions: %s, aria supports: %s)",
		e.Name, strings.Join(e.Declared, ", "), strings.Join(hostAPIStrings(), ", "))
}

// CopyError reports a failure while copying a single plugin into the
// plugin directory.
type CopyError struct {
	Name   string
	Target string
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed installing plugin %q to %s: %s", e.Name, e.Target, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// joinErrors collapses a list of errors into a single one. Information
// may be lost, only the textual descriptions survive.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}

	var b strings.Builder
	for i, err := range errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return errors.New(b.String())
}
