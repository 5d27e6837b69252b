// Package logging configures the process-wide zerolog logger for lvpack.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileName is relative to the XDG state directory.
const logFileName = "lvpack/lvpack.log"

// Setup configures the global logger on stderr. Verbosity maps to levels:
// 0 warn, 1 info, 2 debug, 3+ trace. With toFile, JSON records are also
// appended to the lvpack log under the XDG state directory; failing to open
// it only downgrades to console logging.
//
// The returned func closes the log file, if any.
func Setup(verbosity int, toFile bool) func() {
	return SetupWriter(os.Stderr, verbosity, toFile)
}

// SetupWriter is Setup with an explicit console destination.
func SetupWriter(out io.Writer, verbosity int, toFile bool) func() {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(out),
	}

	writers := []io.Writer{console}
	closeFn := func() {}

	var (
		logFile string
		fileErr error
	)
	if toFile {
		var f *os.File
		logFile, f, fileErr = openLogFile()
		if fileErr == nil {
			writers = append(writers, f)
			closeFn = func() { _ = f.Close() }
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Warn().Err(fileErr).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")

	return closeFn
}

// Get returns the global logger tagged with component.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogFilePath is where Setup appends when toFile is set. It creates the
// parent directory.
func LogFilePath() (string, error) {
	path, err := xdg.StateFile(logFileName)
	if err != nil {
		return "", fmt.Errorf("failed to resolve log file path: %w", err)
	}

	return path, nil
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

func openLogFile() (string, *os.File, error) {
	path, err := LogFilePath()
	if err != nil {
		return "", nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return path, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return path, f, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
