// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Metadata: application name and version.
  - Logging: shared attribute keys for structured logs.
  - Import: entity names used in change events.
*/
package constants

// # Metadata

const (
	AppName    = "whatmanga"
	AppVersion = "0.1.0-dev"
)

// # Log Attribute Keys

const (
	FieldApp     = "app"
	FieldVersion = "version"
	FieldRunID   = "run_id"
	FieldCommand = "command"
	FieldOwner   = "owner_id"
	FieldMode    = "mode"
	FieldError   = "error"
)

// # Import

const (
	// EntityWork names the records produced by an import in change events.
	EntityWork = "work"

	// StdinPath is the input argument that reads from standard input.
	StdinPath = "-"
)
