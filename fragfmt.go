// Package fragfmt builds printf-style format strings from interleaved literal
// fragments and values, then renders them.
//
// A call alternates literal text with the values it formats:
//
//	s, err := fragfmt.Format("Index %04d", 5, " of %s", total, ", again %1")
//
// A specifier may only appear at the end of a fragment, where it binds the
// following token. %N re-emits the Nth bound specifier with its value, and %%
// is a literal percent. Values that follow no specifier are rendered as %s.
//
// Plain strings are literal text. Wrap a string in Arg to pass it as a value
// so any '%' it contains is printed rather than interpreted.
package fragfmt

import (
	"github.com/teranos/fragfmt/compiler"
)

var defaultEngine = NewEngine()

// Format compiles the tokens and renders them in one step.
func Format(starter any, rest ...any) (string, error) {
	return defaultEngine.Format(starter, rest...)
}

// New compiles the tokens into a reusable Formatter.
func New(starter any, rest ...any) (*Formatter, error) {
	return defaultEngine.New(starter, rest...)
}

// Must is like New but panics on a compile error. It simplifies package-level
// Formatter variables.
func Must(starter any, rest ...any) *Formatter {
	f, err := New(starter, rest...)
	if err != nil {
		panic(err)
	}
	return f
}

// Arg marks v as a value, even when it is a string.
func Arg(v any) compiler.Arg {
	return compiler.Arg{Value: v}
}
