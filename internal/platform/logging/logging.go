// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logging builds the process logger from [config.Config].

Records are structured with log/slog and tagged with the application name
and version. Development runs also record the source position.
When a log file is configured the output goes through a size-rotated
lumberjack writer instead of the fallback writer.
*/
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/taibuivan/whatmanga/internal/platform/config"
	"github.com/taibuivan/whatmanga/internal/platform/constants"
)

// Logger couples a [*slog.Logger] with the writer it owns.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New builds the logger described by cfg. fallback receives the records
// when cfg.LogFile is empty.
//
// Parameters:
//   - cfg: runtime configuration (format, level, rotation)
//   - fallback: destination used without a log file, usually stderr
//
// Returns:
//   - *Logger: call Close when the run ends to flush the rotated file
func New(cfg *config.Config, fallback io.Writer) *Logger {
	var (
		writer = fallback
		closer io.Closer
	)

	if cfg.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   true,
		}
		writer, closer = rotating, rotating
	}

	return &Logger{
		Logger: slog.New(newHandler(cfg, writer)).With(
			slog.String(constants.FieldApp, constants.AppName),
			slog.String(constants.FieldVersion, constants.AppVersion),
		),
		closer: closer,
	}
}

func newHandler(cfg *config.Config, writer io.Writer) slog.Handler {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.IsDevelopment()}

	if cfg.LogFormat == config.LogFormatText {
		return slog.NewTextHandler(writer, opts)
	}
	return slog.NewJSONHandler(writer, opts)
}

// Close releases the rotated log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
