// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for WhatManga.

It provides a rich error type that bridges the gap between low-level domain
errors and what the command line reports to the operator.

Architecture:

  - AppError: A struct containing a machine-readable Code and an operator-facing message.
  - Mapping: Explicit mapping from AppError to process exit codes.

Every error that leaves the service layer should be wrapped as an [AppError] so
the CLI can report it consistently.
*/
package apperr

import (
	"errors"
	"fmt"
)

// Process exit codes reported for an [AppError].
const (
	// ExitFailure is used for unexpected failures.
	ExitFailure = 1

	// ExitUsage is used for invalid input (bad flags, malformed requests).
	ExitUsage = 2
)

// AppError is the canonical error type for WhatManga.
//
// It carries a machine-readable code, an operator-safe message, the exit code
// the CLI should terminate with, and an optional slice of field-level
// validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"error"`
	// ExitCode is the process exit status used by the CLI.
	ExitCode int `json:"-"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the field that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the operator-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Input Errors

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Work") // Returns "Work not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:     "NOT_FOUND",
		Message:  resource + " not found",
		ExitCode: ExitFailure,
	}
}

// Conflict creates a CONFLICT [AppError] for duplicate records.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:     "CONFLICT",
		Message:  msg,
		ExitCode: ExitFailure,
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:     "VALIDATION_ERROR",
		Message:  msg,
		ExitCode: ExitUsage,
		Details:  details,
	}
}

// Unprocessable creates an UNPROCESSABLE [AppError] for input that is
// well-formed but cannot be acted upon (e.g. an unreadable list file).
func Unprocessable(msg string, cause error) *AppError {
	return &AppError{
		Code:     "UNPROCESSABLE",
		Message:  msg,
		ExitCode: ExitUsage,
		Cause:    cause,
	}
}

// # Internal Errors

// Internal creates an INTERNAL_ERROR [AppError] wrapping an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:     "INTERNAL_ERROR",
		Message:  fmt.Sprintf("An unexpected error occurred: %v", cause),
		ExitCode: ExitFailure,
		Cause:    cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsNotFound reports whether err (or any error in its chain) is a NOT_FOUND [*AppError].
func IsNotFound(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == "NOT_FOUND"
}

// ExitCode returns the exit status the CLI should use for err.
// A nil error maps to 0 and a foreign error to [ExitFailure].
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ae := As(err); ae != nil && ae.ExitCode != 0 {
		return ae.ExitCode
	}
	return ExitFailure
}
