package compiler

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrorKind categorizes compile errors for programmatic handling
type ErrorKind string

const (
	ErrorKindType       ErrorKind = "type"       // starter is not literal text
	ErrorKindSyntax     ErrorKind = "syntax"     // misplaced or unbound specifier
	ErrorKindReference  ErrorKind = "reference"  // back-reference to an unbound option
	ErrorKindConversion ErrorKind = "conversion" // value kind rejected in strict mode
)

// ErrorContext selects how an Error is rendered
type ErrorContext int

const (
	ErrorContextPlain    ErrorContext = iota // logs, JSON, tests
	ErrorContextTerminal                     // coloured CLI output
)

// Error is a structured compile failure. It unwraps to one of the sentinels in
// package errors so callers can test the taxonomy with errors.Is.
type Error struct {
	Err         error     // Sentinel or checker error
	Kind        ErrorKind // Error category
	Message     string    // Human-readable message
	Token       int       // Index of the offending token (0 is the starter)
	TokenCount  int       // Total tokens being compiled
	Fragment    string    // Literal text involved, when there is one
	Offset      int       // Byte offset within Fragment, -1 when not applicable
	Suggestions []string  // Possible fixes
}

func newError(kind ErrorKind, sentinel error, message string) *Error {
	return &Error{
		Err:     sentinel,
		Kind:    kind,
		Message: message,
		Token:   -1,
		Offset:  -1,
	}
}

// Error implements error interface
func (e *Error) Error() string {
	return e.FormatError(ErrorContextPlain)
}

// Unwrap for errors.Is/As compatibility
func (e *Error) Unwrap() error {
	return e.Err
}

// FormatError generates context-appropriate error message
func (e *Error) FormatError(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		return e.formatTerminalError()
	}
	return e.formatPlainError()
}

// formatPlainError creates concise error for logs and programmatic use
func (e *Error) formatPlainError() string {
	msg := e.Message
	if e.Token >= 0 && e.TokenCount > 0 {
		msg += fmt.Sprintf(" (token %d/%d", e.Token, e.TokenCount)
		if e.Offset >= 0 {
			msg += fmt.Sprintf(", offset %d", e.Offset)
		}
		msg += ")"
	}
	return msg
}

// formatTerminalError creates rich colored error for terminal
func (e *Error) formatTerminalError() string {
	var b strings.Builder
	b.WriteString(pterm.Red(e.Message))

	if e.Token >= 0 || e.Fragment != "" {
		b.WriteString("\n\n")
		b.WriteString(pterm.LightCyan("Context:"))
		if e.Token >= 0 && e.TokenCount > 0 {
			fmt.Fprintf(&b, "\n  %s %d/%d", pterm.Yellow("Token:"), e.Token, e.TokenCount)
		}
		if e.Fragment != "" {
			quoted := fmt.Sprintf("%q", e.Fragment)
			fmt.Fprintf(&b, "\n  %s %s", pterm.Yellow("Fragment:"), quoted)
			if e.Offset >= 0 {
				// caret column: quoted prefix without its closing quote
				pad := len("  Fragment: ") + len(fmt.Sprintf("%q", e.Fragment[:e.Offset])) - 1
				fmt.Fprintf(&b, "\n%s%s", strings.Repeat(" ", pad), pterm.Red("^"))
			}
		}
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(pterm.Green("Suggestions:"))
		for _, suggestion := range e.Suggestions {
			fmt.Fprintf(&b, "\n  • %s", suggestion)
		}
	}

	return b.String()
}

// withToken sets the token position where the error occurred
func (e *Error) withToken(index, total int) *Error {
	e.Token = index
	e.TokenCount = total
	return e
}

// withFragment sets the literal text and the byte offset of the failure
func (e *Error) withFragment(fragment string, offset int) *Error {
	e.Fragment = fragment
	e.Offset = offset
	return e
}

// withSuggestion adds a suggestion for fixing the error
func (e *Error) withSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}
