// Package log is a thin slog wrapper for the dayflow CLI. Logs go to
// stderr so stdout stays reserved for command output, and coded errors
// carry their code and suggestions into the log record.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/dayflowhq/dayflow/internal/errors"
)

// Format selects the handler used to render log records.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat maps a config string to a Format. Unknown values fall
// back to text, the CLI default.
func ParseFormat(s string) Format {
	if s == "json" || s == "JSON" {
		return FormatJSON
	}
	return FormatText
}

// ParseLevel maps a config string to a slog level. Unknown values fall
// back to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "info", "INFO":
		return slog.LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config controls the logger's level, format, and destination.
type Config struct {
	Level  slog.Level
	Format Format
	Output io.Writer
}

// DefaultConfig logs at WARN in text to stderr. Anything louder is
// noise during normal interactive use.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// Logger wraps slog.Logger with coded-error awareness.
type Logger struct {
	slog *slog.Logger
}

// New builds a Logger from the config.
func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: config.Level}

	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &Logger{slog: slog.New(handler)}
}

// With returns a Logger with the attributes added to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// WithError attaches the error to the logger. Coded errors contribute
// their code, suggestions, and cause as separate attributes.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	dfErr, ok := err.(*errors.DayflowError)
	if !ok {
		return l.With("error", err.Error())
	}

	args := []any{
		"error", dfErr.Message,
		"error_code", string(dfErr.Code),
	}
	if len(dfErr.Suggestions) > 0 {
		args = append(args, "suggestions", dfErr.Suggestions)
	}
	if dfErr.Cause != nil {
		args = append(args, "cause", dfErr.Cause.Error())
	}
	return l.With(args...)
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

var (
	defaultMu  sync.Mutex
	defaultLog *Logger
)

// SetDefaultLogger installs the process-wide logger. buildApp calls
// this once after reading the config.
func SetDefaultLogger(l *Logger) {
	defaultMu.Lock()
	defaultLog = l
	defaultMu.Unlock()
}

// DefaultLogger returns the installed logger, building one from
// DefaultConfig on first use.
func DefaultLogger() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLog == nil {
		defaultLog = New(DefaultConfig())
	}
	return defaultLog
}
