package driver

import (
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// package logger instance
	log = newLogger()

	TAG = "driver"
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Level = logrus.WarnLevel
	return l
}

// SetLogLevelString changes the package log level.
func SetLogLevelString(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	log.Level = ll
	return nil // OK
}

// SetLogLevel changes the package log level.
func SetLogLevel(level logrus.Level) {
	log.Level = level
}

// GetLogLevel gets the package log level.
func GetLogLevel() logrus.Level {
	return log.Level
}

// SetLogOutput redirects package log messages, stderr by default.
func SetLogOutput(w io.Writer) {
	log.Out = w
}
