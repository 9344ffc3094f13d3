// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package alog

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, level int, log func()) string {
	t.Helper()

	oldLevel := GetLevel()
	var buf bytes.Buffer
	SetWriter(&buf)
	SetLevel(level)
	DisableColor()
	defer func() {
		SetWriter(os.Stderr)
		SetLevel(oldLevel)
	}()

	log()
	return buf.String()
}

func TestLevelFilter(t *testing.T) {
	out := capture(t, int(InfoLevel), func() {
		Debugf("hidden")
		Infof("shown")
	})

	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info message missing: %q", out)
	}
}

func TestPrefix(t *testing.T) {
	out := capture(t, int(InfoLevel), func() {
		Warningf("be careful")
	})

	if !strings.HasPrefix(out, "WARNING:") {
		t.Errorf("unexpected prefix: %q", out)
	}
	if !strings.HasSuffix(out, "be careful\n") {
		t.Errorf("unexpected message: %q", out)
	}
}

func TestErrorfShownWhenQuiet(t *testing.T) {
	out := capture(t, int(LogLevel), func() {
		Infof("hidden")
		Errorf("it broke")
	})

	if strings.Contains(out, "hidden") {
		t.Errorf("info message written at quiet level: %q", out)
	}
	if !strings.Contains(out, "it broke") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestVerbosef(t *testing.T) {
	out := capture(t, int(VerboseLevel), func() {
		Verbosef("chatty")
	})
	if !strings.Contains(out, "chatty") {
		t.Errorf("verbose message missing: %q", out)
	}

	out = capture(t, int(InfoLevel), func() {
		Verbosef("chatty")
	})
	if strings.Contains(out, "chatty") {
		t.Errorf("verbose message written at info level: %q", out)
	}
}

func TestWriter(t *testing.T) {
	oldLevel := GetLevel()
	var buf bytes.Buffer
	SetWriter(&buf)
	defer func() {
		SetWriter(os.Stderr)
		SetLevel(oldLevel)
	}()

	SetLevel(int(InfoLevel))
	if _, err := Writer().Write([]byte("external output")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "external output" {
		t.Errorf("unexpected writer output: %q", buf.String())
	}

	// silent runs discard external output
	buf.Reset()
	SetLevel(int(LogLevel))
	if _, err := Writer().Write([]byte("external output")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "" {
		t.Errorf("output written while silent: %q", buf.String())
	}
}

func TestGetEnvVar(t *testing.T) {
	oldLevel := GetLevel()
	defer SetLevel(oldLevel)

	SetLevel(int(DebugLevel))
	if got := GetEnvVar(); got != "ARIA_MESSAGELEVEL=3" {
		t.Errorf("unexpected environment variable: %s", got)
	}
}
