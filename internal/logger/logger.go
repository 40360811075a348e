// Package logger builds the slog logger used across drfriend.
package logger

import (
	"io"
	"log/slog"

	"github.com/iudanet/drfriend/internal/config"
)

// Setup creates a logger writing to w with the level and format from cfg.
// The CLI passes os.Stderr so that command output on stdout stays clean.
func Setup(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
