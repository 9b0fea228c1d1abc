package escape

import (
	"log/slog"
	"sync/atomic"
)

// logger is shared by the solver, the runner and the interactive session.
var logger atomic.Pointer[slog.Logger]

func init() { SetLogger(nil) }

// SetLogger routes the optimizer's diagnostics to l; nil silences them.
// Safe to call while solvers are running.
//
// Records emitted:
//
//	Info  "escape: prepared"   edges, samples, edge_samples, bulk_samples, attempts, population
//	Debug "escape: generation" index, distance, escaped, best, second
//	Info  "runner: stopped"    reason, generations, distance
//	Warn  "session: failed"    err
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return logger.Load() }
