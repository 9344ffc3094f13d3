// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package aria

import (
	"context"
	"fmt"

	"github.com/ariatag/aria/internal/pkg/plugin"
	"github.com/ariatag/aria/pkg/alog"
	pb "gopkg.in/cheggaaa/pb.v1"
)

// InstallPluginsOptions controls an installation run.
type InstallPluginsOptions struct {
	// ShowProgressBar displays a progress bar advancing per source.
	ShowProgressBar bool
	// ForceLocal treats every source as a local directory.
	ForceLocal bool
	// ForceRepo treats every source as a repository URL.
	ForceRepo bool
}

func detectSources(sources []string, opts InstallPluginsOptions) ([]plugin.Source, error) {
	detected := make([]plugin.Source, 0, len(sources))
	for _, s := range sources {
		switch {
		case opts.ForceLocal:
			detected = append(detected, plugin.Source{Kind: plugin.SourceDir, Value: s})
		case opts.ForceRepo:
			detected = append(detected, plugin.Source{Kind: plugin.SourceRepo, Value: s})
		default:
			source, err := plugin.DetectSource(s)
			if err != nil {
				return nil, err
			}
			detected = append(detected, source)
		}
	}
	return detected, nil
}

// InstallPlugins installs plugins from the given sources, each either
// a repository URL or a local directory. Installed plugins are
// enabled. A failing source does not block the remaining ones, an
// error is only returned when nothing could be installed.
func InstallPlugins(ctx context.Context, sources []string, opts InstallPluginsOptions) error {
	detected, err := detectSources(sources, opts)
	if err != nil {
		return err
	}

	manager, err := newPluginManager()
	if err != nil {
		return err
	}

	copier, err := plugin.NewCopier(manager.PrimaryDir())
	if err != nil {
		return err
	}
	installer := plugin.NewInstaller(nil, copier)

	var bar *pb.ProgressBar
	if opts.ShowProgressBar {
		bar = pb.New(len(detected)).Prefix("Installing plugins")
		bar.ShowTimeLeft = false
		bar.Start()
	}

	progress := func(message string) {
		alog.Infof("%s", message)
	}
	sourceDone := func(plugin.Source, error) {
		if bar != nil {
			bar.Increment()
		}
	}

	// the whole pipeline runs on one background worker, the runner
	// rejects overlapping submissions
	var runner plugin.Runner
	results := make(chan plugin.Result, 1)
	err = runner.Start(func(progress plugin.ProgressFunc) plugin.Result {
		return installer.InstallAll(ctx, detected, progress, sourceDone)
	}, progress, func(res plugin.Result) {
		results <- res
	})
	if err != nil {
		return err
	}
	res := <-results

	if bar != nil {
		bar.Finish()
	}

	for _, name := range res.Installed {
		if err := manager.Enable(name); err != nil {
			alog.Warningf("Could not enable plugin %q: %s", name, err)
		}
	}
	if err := manager.Refresh(); err != nil {
		alog.Warningf("Could not refresh plugin registry: %s", err)
	}

	for _, name := range res.Installed {
		fmt.Printf("Installed plugin %s\n", name)
	}

	if res.Failed > 0 && len(res.Installed) == 0 {
		return fmt.Errorf("could not install plugins from %d source(s)", res.Failed)
	}
	if res.Failed > 0 {
		alog.Warningf("Could not install plugins from %d source(s)", res.Failed)
	}
	return nil
}
