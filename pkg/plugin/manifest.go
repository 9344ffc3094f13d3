// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package plugin defines the aria plugin manifest format. Every plugin
// package ships a MANIFEST.toml at its root describing the plugin
// identity and the plugin API versions it was written against.
package plugin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blang/semver/v4"
	toml "github.com/pelletier/go-toml"
)

const (
	// ManifestName is the name of the manifest file within a plugin
	// directory.
	ManifestName = "MANIFEST.toml"
	// EntryPointName is the name of the script file a plugin directory
	// must provide next to its manifest.
	EntryPointName = "init.lua"
)

// LocalizedText holds text keyed by language code. Manifests may
// provide either a plain string or a table of translations for the
// name and description fields.
type LocalizedText map[string]string

// Get returns the text for lang, falling back to English and then to
// any available translation.
func (t LocalizedText) Get(lang string) string {
	if s, ok := t[lang]; ok {
		return s
	}
	if s, ok := t["en"]; ok {
		return s
	}

	// deterministic fallback
	langs := make([]string, 0, len(t))
	for l := range t {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	if len(langs) > 0 {
		return t[langs[0]]
	}
	return ""
}

// Manifest is the declarative description of a plugin package.
type Manifest struct {
	// Name of the plugin, possibly translated.
	Name LocalizedText
	// Authors of the plugin.
	Authors []string
	// Description of the plugin, possibly translated.
	Description LocalizedText
	// License is the license identifier of the plugin.
	License string
	// Version describes the version of the plugin itself.
	Version string
	// API lists the plugin API versions the plugin declares
	// compatibility with.
	API []string
}

// Read parses a manifest from r.
func Read(r io.Reader) (*Manifest, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse manifest: %s", err)
	}

	m := &Manifest{
		Name:        localizedText(tree.Get("name")),
		Authors:     stringSlice(tree.Get("authors")),
		Description: localizedText(tree.Get("description")),
		License:     stringValue(tree.Get("license")),
		Version:     stringValue(tree.Get("version")),
		API:         stringSlice(tree.Get("api")),
	}

	if len(m.Name) == 0 {
		return nil, fmt.Errorf("manifest has no name")
	}

	return m, nil
}

// LoadManifest reads the manifest file of the plugin directory dir.
func LoadManifest(dir string) (*Manifest, error) {
	fh, err := os.Open(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return Read(fh)
}

// APIVersions returns the parsed plugin API versions declared by the
// manifest. Short forms such as "3.0" are accepted.
func (m *Manifest) APIVersions() ([]semver.Version, error) {
	versions := make([]semver.Version, 0, len(m.API))
	for _, v := range m.API {
		parsed, err := semver.ParseTolerant(v)
		if err != nil {
			return nil, fmt.Errorf("invalid api version %q: %s", v, err)
		}
		versions = append(versions, parsed)
	}
	return versions, nil
}

// DisplayName returns the plugin name for lang.
func (m *Manifest) DisplayName(lang string) string {
	return m.Name.Get(lang)
}

// DescriptionPreview returns a single line description for lang,
// whitespace normalized and truncated to at most maxChars characters.
func (m *Manifest) DescriptionPreview(lang string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}

	normalized := strings.Join(strings.Fields(m.Description.Get(lang)), " ")

	runes := []rune(normalized)
	if len(runes) <= maxChars {
		return normalized
	}
	if maxChars <= 3 {
		return strings.TrimRight(string(runes[:maxChars]), " ")
	}
	return strings.TrimRight(string(runes[:maxChars-3]), " ") + "..."
}

func stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func stringSlice(v interface{}) []string {
	switch values := v.(type) {
	case []string:
		return values
	case []interface{}:
		strs := make([]string, 0, len(values))
		for _, value := range values {
			if s, ok := value.(string); ok {
				strs = append(strs, s)
			}
		}
		return strs
	}
	return nil
}

func localizedText(v interface{}) LocalizedText {
	switch value := v.(type) {
	case string:
		return LocalizedText{"en": value}
	case *toml.Tree:
		text := make(LocalizedText)
		for lang, s := range value.ToMap() {
			if s, ok := s.(string); ok {
				text[lang] = s
			}
		}
		return text
	}
	return nil
}
