package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLogLevel преобразует строку уровня логирования в slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q, use one of: debug, info, warn, error", level)
	}
}
