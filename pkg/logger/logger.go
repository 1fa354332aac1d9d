// Package logger provides the process-wide logger: a thin printf-style
// facade over rs/zerolog with optional file output.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with the printf-style interface every layer
// of the service consumes.
type Logger struct {
	log  zerolog.Logger
	file *os.File
}

// New creates a logger writing to the given file, or to stdout when file is
// empty. Level is one of debug, info, warn, error; unknown values fall back
// to info.
func New(file, level string) (*Logger, error) {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	var f *os.File

	if file != "" {
		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		out = f
	}

	z := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
	return &Logger{log: z, file: f}, nil
}

// Close releases the underlying log file, if any
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

// Fatal logs the message and terminates the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatal().Msgf(format, v...)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
