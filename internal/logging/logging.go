// Package logging builds the slog logger used for diagnostics. Diagnostics go to
// stderr and stay quiet at the default warn level; user-facing messages are printed
// by internal/cli/output instead.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ifile/internal/core"
)

const (
	levelEnvVar  = "IFILE_LOG_LEVEL"
	formatEnvVar = "IFILE_LOG_FORMAT"
)

// ProvideLogger builds a logger from the logging section of the config. The
// IFILE_LOG_LEVEL and IFILE_LOG_FORMAT environment variables take precedence. An
// invalid override is ignored with a warning and the config values are used.
func ProvideLogger(configRepository core.ConfigRepository) (*slog.Logger, error) {
	return provideLogger(configRepository, os.Stderr)
}

func provideLogger(configRepository core.ConfigRepository, w io.Writer) (*slog.Logger, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := config.Logging.Level
	if value, ok := os.LookupEnv(levelEnvVar); ok && value != "" {
		level = value
	}
	format := config.Logging.Format
	if value, ok := os.LookupEnv(formatEnvVar); ok && value != "" {
		format = value
	}

	logger, overrideErr := New(w, level, format)
	if overrideErr == nil {
		return logger, nil
	}
	logger, err = New(w, config.Logging.Level, config.Logging.Format)
	if err != nil {
		return nil, err
	}
	logger.Warn("ignoring logging environment override", "error", overrideErr)
	return logger, nil
}

func New(w io.Writer, level string, format string) (*slog.Logger, error) {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
