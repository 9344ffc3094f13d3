// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CopyTree recursively copies the directory tree rooted at src to dst.
// dst must not exist yet. Symbolic links are copied as links, entries
// whose base name matches one of the ignore patterns (filepath.Match
// syntax) are skipped together with their children.
func CopyTree(src, dst string, ignore []string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return errors.Wrapf(err, "could not stat %s", src)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", src)
	}
	if _, err := os.Lstat(dst); err == nil {
		return errors.Errorf("destination %s already exists", dst)
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		if rel != "." && matchAny(filepath.Base(path), ignore) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, rel)

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			linkTarget, err := os.Readlink(path)
			if err != nil {
				return errors.Wrapf(err, "could not read link %s", path)
			}
			return os.Symlink(linkTarget, target)
		case info.IsDir():
			return MkdirAll(target, info.Mode().Perm())
		case info.Mode().IsRegular():
			return copyFile(path, target, info.Mode().Perm())
		default:
			// sockets, devices and the like have no business in a
			// plugin tree
			return nil
		}
	})
}

func matchAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", src)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "could not copy %s to %s", src, dst)
	}

	return out.Close()
}
