// Copyright (c) 2026, Ariatag Authors. All rights reserved.
// This software is licensed under a 3-clause BSD license. Please consult the
// LICENSE.md file distributed with the sources of this project regarding your
// rights to use or distribute this software.

package alog

type messageLevel int

// Log levels.
const (
	FatalLevel   messageLevel = iota - 4 // FatalLevel   : -4
	ErrorLevel                           // ErrorLevel   : -3
	WarnLevel                            // WarnLevel    : -2
	LogLevel                             // LogLevel     : -1
	_                                    // SKIP         : 0
	InfoLevel                            // InfoLevel    : 1
	VerboseLevel                         // VerboseLevel : 2
	DebugLevel                           // DebugLevel   : 3
)

var messageLabels = map[messageLevel]string{
	FatalLevel:   "FATAL",
	ErrorLevel:   "ERROR",
	WarnLevel:    "WARNING",
	LogLevel:     "LOG",
	InfoLevel:    "INFO",
	VerboseLevel: "VERBOSE",
	DebugLevel:   "DEBUG",
}

func (l messageLevel) String() string {
	str, ok := messageLabels[l]
	if !ok {
		str = "????"
	}
	return str
}
