// Package logging contains the structured logger used by the world loader and its tools.
//
// Loggers carry a name, a level and a set of bound fields. Fields bound with With are attached to
// every entry, which is how a loader ties all the findings of one file to its path.
package logging

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewLogger returns a new logger that outputs Info+ logs to w in UTC.
func NewLogger(name string, w io.Writer) Logger {
	return newImpl(name, INFO, true, NewWriterAppender(w))
}

// NewDebugLogger returns a new logger that outputs Debug+ logs to w in UTC.
func NewDebugLogger(name string, w io.Writer) Logger {
	return newImpl(name, DEBUG, true, NewWriterAppender(w))
}

// NewTestLogger returns a new logger that outputs Debug+ logs to the test object in local time.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also saves logs to an in memory observer.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observerCore, observedLogs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	return newImpl("", DEBUG, false, NewTestAppender(tb), observerCore), observedLogs
}
