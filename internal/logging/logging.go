// Package logging configures the process logger. Output always goes to
// stderr: in MCP mode stdout carries the protocol stream and must stay
// clean.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger at the named level. Unknown levels fall back to
// warning; debug forces the debug level regardless of level.
func New(level string, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	if debug {
		parsed = logrus.DebugLevel
	}
	logger.SetLevel(parsed)

	return logger
}
