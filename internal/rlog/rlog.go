// File: internal/rlog/rlog.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// rlog wraps the standard library's log.Logger with the level ladder
// from original_source/library/Log.h (error/warning/info/debug),
// matching the teacher's exclusive choice of the stdlib log package
// for every logging call in its server/facade/examples code.

package rlog

import (
	"fmt"
	"log"
	"os"
)

// Level is the logging ladder, NONE < ERROR < WARNING < INFO < DEBUG.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

// ParseLevel maps RLBOT_LOG_LEVEL's string values to a Level, falling
// back to LevelWarning (the spec's default) for anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "NONE":
		return LevelNone
	case "ERROR":
		return LevelError
	case "WARNING":
		return LevelWarning
	case "INFO":
		return LevelInfo
	case "DEBUG":
		return LevelDebug
	default:
		return LevelWarning
	}
}

// Logger gates *log.Logger output by Level.
type Logger struct {
	level Level
	out   *log.Logger
}

// New returns a Logger writing to os.Stderr at level, the same
// destination the teacher's own log.Printf calls use implicitly.
func New(level Level) *Logger {
	return &Logger{level: level, out: log.New(os.Stderr, "", log.LstdFlags)}
}

// Default is the package-level Logger used by callers that don't hold
// their own, defaulting to LevelWarning per spec.md §6.
var Default = New(LevelWarning)

// SetLevel adjusts the Default logger's level, called once by package
// rlbot after reading RLBOT_LOG_LEVEL.
func SetLevel(level Level) { Default.level = level }

func (l *Logger) log(level Level, format string, args ...any) {
	if l.level < level {
		return
	}
	l.out.Output(3, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any)   { l.log(LevelError, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.log(LevelWarning, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.log(LevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...any)   { l.log(LevelDebug, format, args...) }

func Error(format string, args ...any)   { Default.Error(format, args...) }
func Warning(format string, args ...any) { Default.Warning(format, args...) }
func Info(format string, args ...any)    { Default.Info(format, args...) }
func Debug(format string, args ...any)   { Default.Debug(format, args...) }
