package compiler

import "fmt"

// Arg marks a token as a value. A string wrapped in Arg is never read as
// literal text, so its '%' characters carry no meaning.
type Arg struct {
	Value any
}

// Unwrap strips any Arg wrappers from v
func Unwrap(v any) any {
	for {
		a, ok := v.(Arg)
		if !ok {
			return v
		}
		v = a.Value
	}
}

// literalText reports whether tok is literal text. Only plain Go strings are;
// named string types and Arg-wrapped strings are values.
func literalText(tok any) (string, bool) {
	s, ok := tok.(string)
	return s, ok
}

// Stringify returns the textual representation used for generic %s options.
// Stringers and errors render through their methods; nil renders as "<nil>".
func Stringify(v any) string {
	v = Unwrap(v)
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
