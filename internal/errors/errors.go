// Package errors provides error handling for ts-types-from-strapi.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and sentinel checks through a single import.
//
// Usage:
//
//	// Wrap with context
//	if err := run(); err != nil {
//	    return errors.Wrap(err, "failed to run")
//	}
//
//	// Check sentinels
//	if errors.Is(err, errors.ErrSourceNotFound) {
//	    // handle missing schema file
//	}
package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"

	"github.com/achuchra/ts-types-from-strapi/internal/models"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// Error inspection
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Common sentinel errors for use across the CLI.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrapf() to add context while preserving the type.
var (
	// ErrSourceNotFound indicates the schema source file does not exist
	ErrSourceNotFound = New("source file not found")

	// ErrStale indicates the destination no longer matches its source
	ErrStale = New("generated types are out of date")
)

// IsSourceNotFound checks if an error is or wraps ErrSourceNotFound
func IsSourceNotFound(err error) bool {
	return err != nil && Is(err, ErrSourceNotFound)
}

// IsStale checks if an error is or wraps ErrStale
func IsStale(err error) bool {
	return err != nil && Is(err, ErrStale)
}

// WrapFileSystemError wraps a filesystem failure as a typed GeneratorError
// carrying the operation and path. The cause stays reachable through Unwrap.
func WrapFileSystemError(operation, path string, cause error) error {
	return &models.GeneratorError{
		Type:    models.ErrorTypeFileSystem,
		File:    path,
		Message: fmt.Sprintf("failed to %s: %v", operation, cause),
		Cause:   cause,
	}
}
