// Package tracelog provides the leveled, structured logging collaborator
// used by cmd/sexpjit for compile-time and runtime trace events. Grounded on the Go standard library's log/slog, the
// logging facility wagon, bfcc, and wazero all converge on when they need
// structured output beyond plain fmt.Fprintln — no example repo in this
// pack pulls in a third-party structured-logging library (zap, zerolog,
// logrus), so slog is the ecosystem-idiomatic choice rather than a
// standard-library compromise.
package tracelog

import (
	"io"
	"log/slog"
)

// Logger wraps a *slog.Logger with the handful of calls this module's
// ambient stack needs: leveled text logging plus a Trace hook shaped to
// plug directly into builtin.Options.Trace and jit.Options.Trace.
type Logger struct {
	l *slog.Logger
}

// New constructs a Logger writing leveled text records to w at the given
// minimum level.
func New(w io.Writer, level slog.Level) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{l: slog.New(h)}
}

// Discard returns a Logger that drops every record, for callers (such as
// tests) that want the tracing call sites exercised without any output.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError)
}

// Trace has the signature of builtin.Options.Trace and jit.Options.Trace,
// so the method value lg.Trace can be passed as either hook. It logs each
// compile-time or runtime event at debug level.
func (lg *Logger) Trace(event string, fields ...any) {
	lg.l.Debug(event, fields...)
}

// Info, Warn, and Error forward to the wrapped slog.Logger at the
// corresponding level.
func (lg *Logger) Info(msg string, fields ...any)  { lg.l.Info(msg, fields...) }
func (lg *Logger) Warn(msg string, fields ...any)  { lg.l.Warn(msg, fields...) }
func (lg *Logger) Error(msg string, fields ...any) { lg.l.Error(msg, fields...) }
