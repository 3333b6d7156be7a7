package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across fragfmt.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Compilation
	FieldTokens      = "tokens"
	FieldConversions = "conversions"
	FieldBackrefs    = "backrefs"
	FieldFormat      = "format"
	FieldToken       = "token"
	FieldKind        = "kind"

	// Catalog
	FieldMessage  = "message"
	FieldMessages = "messages"
	FieldPath     = "path"
	FieldRequires = "requires"

	// Timing
	FieldDurationUS = "duration_us"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Catalog struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func New() *Catalog {
//	    return &Catalog{
//	        logger: logger.ComponentLogger("catalog"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
