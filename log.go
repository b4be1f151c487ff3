package xbrzscale

import (
	"log/slog"

	"github.com/obinnaokechukwu/xbrzscale/internal/logging"
)

// SetLogger configures the logger used by xbrzscale. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: library search, buffer sizes, native calls
//   - [slog.LevelInfo]: library loaded
//   - [slog.LevelWarn]: library not found or failed to open
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
