package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
)

type loggerKey struct{}

// newLogger builds a charmbracelet/log logger writing to w at level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	log := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return log
}

// withLogger attaches log to ctx for downstream RunE handlers to pick up.
func withLogger(ctx context.Context, log *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// loggerFromContext returns the logger attached by withLogger, or a
// silent fallback if none was attached (e.g. in a unit test that invokes
// a RunE handler directly).
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*charmlog.Logger); ok {
		return log
	}
	return charmlog.NewWithOptions(io.Discard, charmlog.Options{})
}
