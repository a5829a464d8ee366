// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. Every variable is
read with the WHATMANGA_ prefix, e.g. WHATMANGA_LOG_FORMAT.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Command-line flags override the loaded values; the config itself is never
written back to the environment.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name read by [Load].
const EnvPrefix = "WHATMANGA_"

// Log output formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// # Configuration Schema

// Config holds all runtime configuration for the whatmanga CLI.
type Config struct {

	// Runtime
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Logging. An empty LogFile keeps logs on stderr.
	LogFormat     string `env:"LOG_FORMAT"       envDefault:"json"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB"  envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS"  envDefault:"10"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`

	// MetricsTextfile is where parse and import metrics are written in the
	// Prometheus text format when the process exits. Empty disables it.
	MetricsTextfile string `env:"METRICS_TEXTFILE"`

	// Import defaults
	ImportOwner string `env:"IMPORT_OWNER" envDefault:"local"`
	ImportMode  string `env:"IMPORT_MODE"  envDefault:"add"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.LogFormat != LogFormatJSON && cfg.LogFormat != LogFormatText {
		return nil, fmt.Errorf("config: unsupported log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// IsDevelopment reports whether the CLI is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
