// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli wires configuration, logging, metrics and the import service into
the whatmanga command tree.

Architecture:

  - This package is the topmost presentation boundary.
  - [App] is the composition root; commands only reach the domain through it.
  - Command output goes to the command's stdout; logs go to the configured
    log writer so JSON and YAML output stay machine-readable.
*/
package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/taibuivan/whatmanga/internal/importer"
	"github.com/taibuivan/whatmanga/internal/platform/config"
	"github.com/taibuivan/whatmanga/internal/platform/logging"
	"github.com/taibuivan/whatmanga/internal/platform/metrics"
)

// App holds the dependencies shared by every command of one process.
type App struct {
	Config   *config.Config
	Logger   *logging.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Service  *importer.Service
}

// NewApp builds the dependency graph from cfg. Logs are written to logOutput
// unless cfg names a log file.
func NewApp(cfg *config.Config, logOutput io.Writer) *App {
	logger := logging.New(cfg, logOutput)
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Metrics:  m,
		Service:  importer.NewService(importer.NewMemoryRepository(), importer.LogNotifier{}, m),
	}
}

// Close flushes the metrics textfile, if configured, and releases the log file.
func (app *App) Close() error {
	var errs []error

	if path := app.Config.MetricsTextfile; path != "" {
		if err := metrics.WriteTextfile(path, app.Registry); err != nil {
			app.Logger.Error("metrics_write_failed", slog.String("path", path), slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if err := app.Logger.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
