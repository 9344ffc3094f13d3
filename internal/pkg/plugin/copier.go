// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"os"
	"path/filepath"

	"github.com/ariatag/aria/internal/pkg/util/fs"
	"github.com/ariatag/aria/pkg/alog"
)

// InstalledMarker is touched inside a plugin directory after a
// successful installation.
const InstalledMarker = ".installed"

// ignorePatterns lists entries never copied into an installed plugin.
var ignorePatterns = []string{
	".git",
	".gitignore",
	".gitattributes",
	".gitmodules",
	".DS_Store",
	"*.swp",
}

// CopyPlan describes the installation of a single validated plugin.
type CopyPlan struct {
	Name   string
	Source string
	Target string
}

// Copier installs validated plugins into the plugins root directory,
// replacing any prior installation of the same name.
type Copier struct {
	root string
}

// NewCopier returns a Copier installing below root, creating the
// directory if needed.
func NewCopier(root string) (*Copier, error) {
	if err := fs.MkdirAll(root, 0755); err != nil {
		return nil, err
	}
	return &Copier{root: root}, nil
}

// Root returns the plugins root directory.
func (c *Copier) Root() string {
	return c.root
}

// Plan returns the copy plan placing the named plugin below the
// plugins root.
func (c *Copier) Plan(name, source string) CopyPlan {
	return CopyPlan{
		Name:   name,
		Source: source,
		Target: filepath.Join(c.root, name),
	}
}

// Copy executes the given plans. A failing plan aborts only that
// plugin, the remaining plans still run. Copy returns the names that
// were installed and one CopyError per failed plan.
func (c *Copier) Copy(plans []CopyPlan) ([]string, []error) {
	var installed []string
	var errs []error

	for _, plan := range plans {
		if err := c.copyOne(plan); err != nil {
			errs = append(errs, err)
			continue
		}
		installed = append(installed, plan.Name)
	}

	return installed, errs
}

func (c *Copier) copyOne(plan CopyPlan) error {
	// replace any prior installation
	if err := os.RemoveAll(plan.Target); err != nil {
		return &CopyError{Name: plan.Name, Target: plan.Target, Err: err}
	}

	if err := fs.CopyTree(plan.Source, plan.Target, ignorePatterns); err != nil {
		return &CopyError{Name: plan.Name, Target: plan.Target, Err: err}
	}

	// best effort installation marker
	if err := fs.Touch(filepath.Join(plan.Target, InstalledMarker)); err != nil {
		alog.Debugf("Could not create installation marker in %s: %s", plan.Target, err)
	}

	alog.Debugf("Installed plugin from %s to %s", plan.Source, plan.Target)
	return nil
}
