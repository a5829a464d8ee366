// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command whatmanga is the entry point for the tracking-list CLI.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Initialize the structured logger (stderr or rotated file).
//  3. Wire metrics and the import service.
//  4. Run the requested command until it returns or a signal arrives.
//  5. Flush metrics and logs, then exit with the error's exit code.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/whatmanga/internal/cli"
	"github.com/taibuivan/whatmanga/internal/platform/apperr"
	"github.com/taibuivan/whatmanga/internal/platform/config"
	"github.com/taibuivan/whatmanga/internal/platform/constants"
)

func main() {
	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		// No configured logger yet; report through a bootstrap one.
		bootstrap := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String(constants.FieldApp, constants.AppName))
		must(bootstrap, err, "load configuration")
	}

	// ── 2-3. Logger, metrics, services ────────────────────────────────────
	app := cli.NewApp(cfg, os.Stderr)
	slog.SetDefault(app.Logger.Logger)

	app.Logger.Debug("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("log_format", cfg.LogFormat),
	)

	// ── 4. Command ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := cli.NewRootCommand(app).ExecuteContext(ctx)
	stop()

	// ── 5. Shutdown ───────────────────────────────────────────────────────
	if err := app.Close(); err != nil {
		slog.Error("shutdown error", slog.Any(constants.FieldError, err))
	}

	if runErr != nil {
		cli.ReportError(os.Stderr, runErr)
		os.Exit(apperr.ExitCode(runErr))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// by the commands and mapped to exit codes.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any(constants.FieldError, err),
		)
		os.Exit(apperr.ExitUsage)
	}
}
