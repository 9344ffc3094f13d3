// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package buildcfg holds build-time constants for this aria build.
package buildcfg

const (
	// PACKAGE_NAME is the name under which aria is distributed.
	PACKAGE_NAME = "aria"
	// PACKAGE_VERSION is the version of this aria build.
	PACKAGE_VERSION = "3.2.0"
)

// API_VERSIONS lists the plugin API versions this build of aria
// accepts. Plugins declare the API versions they were written
// against in their manifest, installation and loading require a
// non-empty intersection with this set.
var API_VERSIONS = []string{"3.0", "3.1"}
