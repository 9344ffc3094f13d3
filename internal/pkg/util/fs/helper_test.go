// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsFile(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsFile(file) {
		t.Errorf("IsFile returns false for file")
	}
	if IsFile(dir) {
		t.Errorf("IsFile returns true for directory")
	}
	if IsFile(filepath.Join(dir, "missing")) {
		t.Errorf("IsFile returns true for missing path")
	}
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsDir(dir) {
		t.Errorf("IsDir returns false for directory")
	}
	if IsDir(file) {
		t.Errorf("IsDir returns true for file")
	}
}

func TestIsLink(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(file, link); err != nil {
		t.Fatal(err)
	}

	if !IsLink(link) {
		t.Errorf("IsLink returns false for symlink")
	}
	if IsLink(file) {
		t.Errorf("IsLink returns true for file")
	}
}

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "a", "b", "c")
	if err := MkdirAll(path, 0o755); err != nil {
		t.Fatalf("unexpected error while creating directories: %s", err)
	}
	if !IsDir(path) {
		t.Errorf("directory was not created")
	}
}

func TestTouch(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "touched")
	if err := Touch(path); err != nil {
		t.Fatalf("unexpected error while touching file: %s", err)
	}
	if !IsFile(path) {
		t.Errorf("file was not created")
	}

	// touching an existing file is fine
	if err := Touch(path); err != nil {
		t.Errorf("unexpected error while touching existing file: %s", err)
	}
}
