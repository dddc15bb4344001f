// Package logger builds the logrus logger used for diagnostics.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger for CLI operations. Warnings and errors are always
// shown; verbose adds debug output.
func New(out io.Writer, verbose, color bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	if color {
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:      true,
			DisableTimestamp: true,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
	}

	return logger
}

// Discard returns a logger that drops everything
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Fields merges multiple logrus.Fields into one
func Fields(fields ...logrus.Fields) logrus.Fields {
	result := make(logrus.Fields)
	for _, field := range fields {
		for k, v := range field {
			result[k] = v
		}
	}
	return result
}
