package cli

import (
	"io"
	"log/slog"
)

// SetupLogging installs the default slog logger. Diagnostics stay quiet
// unless verbose is set; status lines go through the console instead.
func SetupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
