// Package testhelpers holds shared test plumbing: a slog logger wired to
// t.Log so database and service output shows up only for failed tests.
package testhelpers

import (
	"io"
	"log/slog"

	"github.com/SiedahmedM/Saif-sub000/internal/logging"
)

// NewLogger creates a debug-level logger writing to the given sink, usually
// testhelpers.NewWriter(t).
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}
