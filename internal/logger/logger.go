// SPDX-License-Identifier: MIT
// Copyright 2026 The Urbanflow Authors

// Package logger provides a thin wrapper around zerolog.Logger configured
// from the agent's Logging settings group.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on
// *Logger. Application code should pass *Logger by pointer and obtain
// scoped loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/urbanflow/edge-agent/internal/config"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "edge-agent")
// honoring the Logging settings group:
//
//   - cfg.Level sets the global level; unknown or empty levels fall back to
//     info;
//   - cfg.FilePath, when non-empty, routes output through a rotating file
//     writer sized by cfg.MaxFileSize and keeping cfg.BackupCount backups;
//   - cfg.EnableConsole echoes output to stdout, rendered as JSON or, when
//     cfg.Format is "console", in zerolog's console format. The file always
//     receives JSON.
//
// Every entry carries a "role" field, a timestamp, and a "func" caller
// field recording the fully-qualified function name.
func NewLogger(role string, cfg config.Logging) *Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	writers := make([]io.Writer, 0, 2)
	if cfg.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    rotationMegabytes(cfg.MaxFileSize),
			MaxBackups: cfg.BackupCount,
		})
	}
	if bool(cfg.EnableConsole) || len(writers) == 0 {
		var console io.Writer = os.Stdout
		if strings.EqualFold(cfg.Format, "console") {
			console = zerolog.ConsoleWriter{Out: os.Stdout}
		}
		writers = append(writers, console)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// rotationMegabytes converts the configured byte threshold to lumberjack's
// megabyte unit. Positive thresholds under one megabyte clamp to 1 rather
// than truncating to 0, which lumberjack would read as its 100 MB default.
func rotationMegabytes(bytes int) int {
	mb := bytes / (1024 * 1024)
	if mb == 0 && bytes > 0 {
		return 1
	}
	return mb
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
