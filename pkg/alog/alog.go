// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

// Package alog implements the aria logging facility: leveled messages
// written to stderr with a colored level prefix.
package alog

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

const messageLevelEnv = "ARIA_MESSAGELEVEL"

var messageColors = map[messageLevel]string{
	FatalLevel: "\x1b[31m",
	ErrorLevel: "\x1b[31m",
	WarnLevel:  "\x1b[33m",
	InfoLevel:  "\x1b[34m",
}

var (
	mu          sync.Mutex
	loggerLevel = InfoLevel
	useColor    = true
	logWriter   = io.Writer(os.Stderr)
)

func init() {
	if level, err := strconv.Atoi(os.Getenv(messageLevelEnv)); err == nil {
		loggerLevel = messageLevel(level)
	}
}

func prefix(msgLevel messageLevel) string {
	colorReset := "\x1b[0m"
	messageColor, ok := messageColors[msgLevel]
	if !ok || !useColor {
		colorReset = ""
		messageColor = ""
	}

	if loggerLevel < DebugLevel {
		return fmt.Sprintf("%s%-8s%s ", messageColor, msgLevel.String()+":", colorReset)
	}

	// debug runs carry the calling function in the prefix
	funcName := "????()"
	if pc, _, _, ok := runtime.Caller(3); ok {
		if details := runtime.FuncForPC(pc); details != nil {
			parts := strings.Split(details.Name(), ".")
			funcName = parts[len(parts)-1] + "()"
		}
	}

	return fmt.Sprintf("%s%-8s%s%-30s", messageColor, msgLevel, colorReset, funcName)
}

func writef(msgLevel messageLevel, format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if loggerLevel < msgLevel {
		return
	}

	message := strings.TrimRight(fmt.Sprintf(format, a...), "\n")
	fmt.Fprintf(logWriter, "%s%s\n", prefix(msgLevel), message)
}

// Fatalf is equivalent to a call to Errorf followed by os.Exit(255). Code
// that may be imported by other projects should NOT use Fatalf.
func Fatalf(format string, a ...interface{}) {
	writef(FatalLevel, format, a...)
	os.Exit(255)
}

// Errorf writes an ERROR level message to the log but does not exit. This
// should be called when an error is being returned to the calling routine.
func Errorf(format string, a ...interface{}) {
	writef(ErrorLevel, format, a...)
}

// Warningf writes a WARNING level message to the log.
func Warningf(format string, a ...interface{}) {
	writef(WarnLevel, format, a...)
}

// Infof writes an INFO level message to the log. INFO level messages are
// always output unless running quiet or silent.
func Infof(format string, a ...interface{}) {
	writef(InfoLevel, format, a...)
}

// Verbosef writes a VERBOSE level message to the log.
func Verbosef(format string, a ...interface{}) {
	writef(VerboseLevel, format, a...)
}

// Debugf writes a DEBUG level message to the log.
func Debugf(format string, a ...interface{}) {
	writef(DebugLevel, format, a...)
}

// SetLevel explicitly sets the logger level.
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	loggerLevel = messageLevel(l)
}

// GetLevel returns the current log level as an integer.
func GetLevel() int {
	mu.Lock()
	defer mu.Unlock()
	return int(loggerLevel)
}

// DisableColor disables coloring of the message prefix.
func DisableColor() {
	mu.Lock()
	defer mu.Unlock()
	useColor = false
}

// GetEnvVar returns a formatted environment variable string which can
// later be interpreted by init() in a child process.
func GetEnvVar() string {
	mu.Lock()
	defer mu.Unlock()
	return fmt.Sprintf("%s=%d", messageLevelEnv, loggerLevel)
}

// Writer returns an io.Writer to pass to the logging facility of external
// packages. When running silent the writer discards all output.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	if loggerLevel <= LogLevel {
		return ioutil.Discard
	}
	return logWriter
}

// SetWriter makes the logger write to w instead of stderr. It is meant
// for tests capturing log output.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logWriter = w
}
