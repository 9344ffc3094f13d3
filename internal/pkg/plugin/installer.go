// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariatag/aria/pkg/alog"
	uuid "github.com/satori/go.uuid"
)

// ProgressFunc receives one-way progress messages from a running
// installation.
type ProgressFunc func(message string)

func (f ProgressFunc) notify(format string, a ...interface{}) {
	if f != nil {
		f(fmt.Sprintf(format, a...))
	}
}

// Installer coordinates plugin installation from repositories and
// local directories by delegating to a Fetcher and a Copier.
type Installer struct {
	fetcher Fetcher
	copier  *Copier
}

// NewInstaller returns an Installer using the given collaborators.
// A nil fetcher selects the git backed default.
func NewInstaller(fetcher Fetcher, copier *Copier) *Installer {
	if fetcher == nil {
		fetcher = NewGitFetcher()
	}
	return &Installer{
		fetcher: fetcher,
		copier:  copier,
	}
}

// InstallFromRepo clones the repository at repoURL into a temporary
// directory and installs every plugin package found within. It returns
// the names of the plugins installed.
func (i *Installer) InstallFromRepo(ctx context.Context, repoURL string, progress ProgressFunc) ([]string, error) {
	tmpDir := filepath.Join(os.TempDir(), "aria-plugin-"+uuid.NewV4().String())
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			alog.Debugf("Could not remove %s: %s", tmpDir, err)
		}
	}()

	repoDir := filepath.Join(tmpDir, "repo")

	progress.notify("Cloning %s...", repoURL)
	if err := i.fetcher.Fetch(ctx, repoURL, repoDir); err != nil {
		return nil, err
	}

	progress.notify("Scanning repository for plugins...")
	candidates, err := Discover(repoDir)
	if err != nil {
		return nil, err
	}

	return i.installCandidates(candidates, progress)
}

// InstallFromDir installs the plugin packages found in the local
// directory dir. A directory which is itself a plugin package is
// installed directly, otherwise the tree is searched. The source is
// never modified.
func (i *Installer) InstallFromDir(dir string, progress ProgressFunc) ([]string, error) {
	progress.notify("Scanning directory for plugins...")

	var candidates []string
	if IsPluginDir(dir) {
		candidates = []string{dir}
	} else {
		var err error
		candidates, err = Discover(dir)
		if err != nil {
			return nil, err
		}
	}

	return i.installCandidates(candidates, progress)
}

func (i *Installer) installCandidates(candidates []string, progress ProgressFunc) ([]string, error) {
	if len(candidates) == 0 {
		return nil, ErrNoPlugins
	}

	progress.notify("Validating plugin manifests...")
	plans := make([]CopyPlan, 0, len(candidates))
	for _, candidate := range candidates {
		name, err := Validate(candidate)
		if err != nil {
			return nil, err
		}
		plans = append(plans, i.copier.Plan(name, candidate))
	}

	progress.notify("Installing plugins...")
	installed, errs := i.copier.Copy(plans)
	return installed, joinErrors(errs)
}

// Result summarizes an installation over multiple sources.
type Result struct {
	// Installed lists the names of all plugins installed.
	Installed []string
	// Failed counts the sources that could not be installed from.
	Failed int
}

// InstallAll installs from every given source. Duplicate sources are
// skipped, a failing source does not block the remaining ones. If
// sourceDone is non-nil it is called after each source with the error
// that source produced, if any.
func (i *Installer) InstallAll(ctx context.Context, sources []Source, progress ProgressFunc, sourceDone func(Source, error)) Result {
	var res Result

	seen := make(map[string]bool)
	for _, source := range sources {
		if seen[source.Value] {
			continue
		}
		seen[source.Value] = true

		var installed []string
		var err error
		switch source.Kind {
		case SourceRepo:
			installed, err = i.InstallFromRepo(ctx, source.Value, progress)
		case SourceDir:
			installed, err = i.InstallFromDir(source.Value, progress)
		default:
			err = fmt.Errorf("unknown source kind %d", source.Kind)
		}

		res.Installed = append(res.Installed, installed...)
		if err != nil {
			alog.Errorf("Could not install from %s: %s", source.Value, err)
			res.Failed++
		}
		if sourceDone != nil {
			sourceDone(source, err)
		}
	}

	return res
}
