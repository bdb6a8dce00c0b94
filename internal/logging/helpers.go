package logging

import (
	"context"
	"log/slog"
)

// Info logs at info level when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs at warn level when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs err under the "error" key when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}

// LogSource logs with the slate source name attached, preferring the context logger.
func LogSource(ctx context.Context, logger *slog.Logger, level slog.Level, source, msg string, args ...any) {
	logger = FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(FieldSource, source))
	logger.Log(ctx, level, msg, args...)
}
