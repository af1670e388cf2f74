package uvalign

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so operators never
// build attributes for a silent logger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns the logger installed when none is configured.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. Operators on other goroutines may read
// it while SetLogger swaps it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes operator diagnostics to l. Nothing is logged until a
// logger is set, and nil silences output again.
//
// The operators report what they made of the UV selection:
//   - [slog.LevelDebug]: loop pair and sequence counts, islands touched,
//     twin corners welded, UVs staged per operator
//   - [slog.LevelWarn]: selected edges left out of every row, such as
//     branches off a loop
//
// To watch a straighten run from the command line:
//
//	uvalign.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger operators write to.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
