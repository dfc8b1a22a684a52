// Package log defines the logging interface used throughout the emulator,
// with a logrus-backed default implementation.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is implemented by anything that can receive the emulator's
// diagnostics: load messages, unknown-opcode events, invalid bit indices.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns the default Logger, writing plain text to standard output.
func New() Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewDebug returns a Logger that also emits debug-level messages, such as
// the BIOS overlay transition and rejected writes.
func NewDebug() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
