// Package bootlog sets up the logger used by every provisioning phase.
// Output goes to a log file and, optionally, a human-readable console
// stream on stderr.
package bootlog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	logFile      io.Closer
	globalLogger zerolog.Logger
)

// New opens the log file and returns a logger writing to it. When
// toConsole is set, a console writer on stderr is added so the
// timestamped lines are visible in the devcontainer creation log.
func New(filename string, toConsole bool) (zerolog.Logger, error) {
	var writers []io.Writer

	if filename == "" {
		filename = "adk-bootstrap.log"
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return zerolog.Nop(), err
		}
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), err
	}
	writers = append(writers, file)

	if toConsole {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

	logFile = file
	globalLogger = logger
	return logger, nil
}

// Get returns the logger created by the last call to New.
func Get() zerolog.Logger {
	return globalLogger
}

// Close closes the log file, flushing all writes.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Console returns a logger writing human-readable lines to stderr
// only, for subcommands that should not touch a log file.
func Console() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

// Nop returns a logger that discards all output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
