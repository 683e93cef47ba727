// Package logging builds the logrus logger. The terminal belongs to the
// TUI, so entries go to a file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to path at the given level. The
// returned closer releases the file.
func New(path, level string) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return newLogger(f, lvl), f, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	return newLogger(io.Discard, logrus.PanicLevel)
}

func newLogger(w io.Writer, lvl logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log
}
