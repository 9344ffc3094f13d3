// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package plugin

import (
	"github.com/ariatag/aria/internal/pkg/buildcfg"
	"github.com/blang/semver/v4"
)

// hostAPIVersions is the plugin API version set supported by this
// build. Tests may swap it out via setHostAPIVersions.
var hostAPIVersions = mustParseVersions(buildcfg.API_VERSIONS)

func mustParseVersions(versions []string) []semver.Version {
	parsed := make([]semver.Version, 0, len(versions))
	for _, v := range versions {
		p, err := semver.ParseTolerant(v)
		if err != nil {
			panic("invalid build API version " + v)
		}
		parsed = append(parsed, p)
	}
	return parsed
}

// HostAPIVersions returns the plugin API versions supported by this
// aria build.
func HostAPIVersions() []semver.Version {
	versions := make([]semver.Version, len(hostAPIVersions))
	copy(versions, hostAPIVersions)
	return versions
}

func hostAPIStrings() []string {
	strs := make([]string, 0, len(hostAPIVersions))
	for _, v := range hostAPIVersions {
		strs = append(strs, v.String())
	}
	return strs
}

// compatibleVersions returns the intersection between the plugin
// declared API versions and the host supported set.
func compatibleVersions(declared []semver.Version) []semver.Version {
	var compatible []semver.Version
	for _, d := range declared {
		for _, h := range hostAPIVersions {
			if d.EQ(h) {
				compatible = append(compatible, d)
				break
			}
		}
	}
	return compatible
}

// isCompatible reports whether a plugin declaring the given API
// versions can run with this build. An empty declared set is treated
// as incompatible.
func isCompatible(declared []semver.Version) bool {
	return len(compatibleVersions(declared)) > 0
}

func setHostAPIVersions(versions []string) []semver.Version {
	old := hostAPIVersions
	hostAPIVersions = mustParseVersions(versions)
	return old
}
