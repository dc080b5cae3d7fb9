// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures the shared logrus logger. The lenient client
// operations report swallowed failures through it so the degrade path
// stays observable.
package logger

import (
	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}

// SetDebug toggles debug-level logging on the standard logger.
func SetDebug(debug bool) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

// WithQuery returns an entry tagged with the search title being processed.
func WithQuery(title string) *logrus.Entry {
	return logrus.WithField("query", title)
}
