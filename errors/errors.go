// Package errors provides error handling for fragfmt.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := load(path); err != nil {
//	    return errors.Wrapf(err, "failed to load catalog %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "escape a literal percent as %%")
//
//	// Check errors
//	if errors.Is(err, errors.ErrSyntax) {
//	    // malformed format call
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Compiler failures. These are programmer errors in how a format call was
// built; they abort compilation and are never recovered internally.
var (
	// ErrType indicates the starter token is not literal text
	ErrType = New("type error")

	// ErrSyntax indicates a specifier outside the tail of a fragment, or a
	// specifier with no value to bind
	ErrSyntax = New("syntax error")

	// ErrReference indicates a back-reference to an option not yet bound
	ErrReference = New("reference error")
)

// ErrUnboundSpecifier is the SyntaxError raised when input ends while a
// specifier is still waiting for its value. It matches ErrSyntax under Is.
var ErrUnboundSpecifier = Mark(New("unbound specifier"), ErrSyntax)

// Formatting primitive failures
var (
	// ErrConversion indicates a value whose kind does not fit its conversion
	ErrConversion = New("conversion mismatch")

	// ErrArgCount indicates the argument list does not match the conversions
	ErrArgCount = New("argument count mismatch")

	// ErrBadFormat indicates a '%' that starts no valid conversion
	ErrBadFormat = New("malformed format string")

	// ErrUnsupported indicates a conversion the primitive cannot render
	ErrUnsupported = New("unsupported conversion")
)

// Catalog and configuration failures
var (
	// ErrNotFound indicates the requested catalog entry does not exist
	ErrNotFound = New("not found")

	// ErrInvalidConfig indicates configuration that failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrIncompatible indicates a catalog requiring a different fragfmt version
	ErrIncompatible = New("incompatible version")
)

// IsCompileError reports whether err is one of the compiler failures.
func IsCompileError(err error) bool {
	return err != nil && IsAny(err, ErrType, ErrSyntax, ErrReference)
}

// IsRenderError reports whether err came from the formatting primitive
func IsRenderError(err error) bool {
	return err != nil && IsAny(err, ErrConversion, ErrArgCount, ErrBadFormat, ErrUnsupported)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidConfig, format, args...)
}
