// log_x86.go - leveled logging wrapper
//
// A thin level gate over the standard library's log package: prefixed
// status lines to stderr, nothing structured.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"log"
	"os"
)

// LogLevel orders the verbosity of emitted messages.
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarn
	LogInfo
	LogDebug
)

func parseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LogDebug
	case "warn":
		return LogWarn
	case "error":
		return LogError
	default:
		return LogInfo
	}
}

// Logger is a small leveled wrapper over the standard library's *log.Logger.
type Logger struct {
	level LogLevel
	inner *log.Logger
}

// NewLogger creates a Logger writing to stderr at the given level.
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level, inner: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *Logger) log(level LogLevel, prefix, format string, args []any) {
	if l == nil || level > l.level {
		return
	}
	l.inner.Printf(prefix+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) { l.log(LogError, "ERROR ", format, args) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LogWarn, "WARN  ", format, args) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LogInfo, "INFO  ", format, args) }
func (l *Logger) Debugf(format string, args ...any) { l.log(LogDebug, "DEBUG ", format, args) }
