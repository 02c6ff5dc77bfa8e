// Package logging provides a minimal structured logger facade over slog.
//
// Diagnostics must never leak into the rendered prompt, so loggers always
// write to an explicit writer (stderr in production) and are passed down by
// value instead of living in package-level state.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the structured logging interface used throughout promptline.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a new Logger with additional context fields.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// New creates a text-handler logger writing to w with the given level.
func New(w io.Writer, level slog.Leveler) Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{l: slog.New(h)}
}

// NewVerbose returns a stderr logger at debug level when verbose is set,
// otherwise a logger that only surfaces warnings and errors.
func NewVerbose(verbose bool) Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return New(os.Stderr, level)
}

// Nop returns a logger that discards all messages.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }
