package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/config"
)

// SetupLogger builds the service logger from config, tags it with the
// service name and installs it as the slog default
func SetupLogger(cfg config.LoggingConfig, serviceName string) *slog.Logger {
	logger := NewLogger(os.Stdout, cfg).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}

// NewLogger creates a text or JSON logger writing to w
func NewLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps debug, info, warn and error to slog levels; anything else is info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
