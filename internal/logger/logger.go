// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-note-sync client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/jrick/logrotate/rotator"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

// FileOptions controls the rotating log file used by [NewClientLogger].
type FileOptions struct {
	// Path of the active log file. An empty path places "logs/client.log"
	// next to the executable.
	Path string
	// MaxSizeKB is the size threshold at which the file is rolled.
	MaxSizeKB int64
	// MaxRolls is the number of rolled files kept on disk.
	MaxRolls int
	// Level is a zerolog level name ("debug", "info", ...). Empty means debug.
	Level string
}

const (
	defaultMaxSizeKB = 10 * 1024
	defaultMaxRolls  = 3
)

func setupGlobals(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	setupGlobals("")
	return newLogger(os.Stdout, role, nil)
}

// NewClientLogger constructs a *Logger that writes to a size-rotated log file.
// When the file cannot be opened the logger falls back to os.Stdout.
func NewClientLogger(role string, opts FileOptions) *Logger {
	setupGlobals(opts.Level)

	path := opts.Path
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs", "client.log")
	}
	if opts.MaxSizeKB <= 0 {
		opts.MaxSizeKB = defaultMaxSizeKB
	}
	if opts.MaxRolls <= 0 {
		opts.MaxRolls = defaultMaxRolls
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(os.Stdout, role, nil)
	}
	r, err := rotator.New(path, opts.MaxSizeKB, false, opts.MaxRolls)
	if err != nil {
		return newLogger(os.Stdout, role, nil) // fallback to stdout if file can't be opened
	}

	return newLogger(r, role, r)
}

func newLogger(w io.Writer, role string, closer io.Closer) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger, closer: closer}
}

// Close flushes and closes the log file when there is one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
