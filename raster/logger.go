package raster

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler silently discards all log records. Enabled returns false
// so the caller skips message formatting entirely, making disabled
// logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically so SetLogger
// can be called concurrently with logging from any worker goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the raster package. By
// default the package produces no log output at all; call SetLogger
// to enable it. Pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use: the new logger is stored
// atomically.
//
// Log levels used by this package:
//   - [slog.LevelDebug]: per-triangle drops (degenerate/back-facing); tile classification is not logged
//   - [slog.LevelWarn]: malformed input batches (sequence length not a multiple of 3)
//
// Render never logs at Info or above on the accept path; a full-screen
// batch would otherwise flood output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by the raster package.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
