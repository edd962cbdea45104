package cli

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// newLogger writes timestamped, leveled lines for terminal use.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// slogFor lets services that take a *slog.Logger log through l.
func slogFor(l *charmlog.Logger) *slog.Logger {
	return slog.New(l)
}
