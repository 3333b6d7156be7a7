// Package cprintf renders C printf format strings with Go values.
//
// Conversions are translated to their closest fmt verb: d, i and u render as
// %d, a and A as hexadecimal floats, s as the value's text. Flags,
// width and precision carry over unchanged. Length modifiers are accepted and
// ignored since Go values carry their own size. %n is rejected.
package cprintf

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/teranos/fragfmt/compiler"
	"github.com/teranos/fragfmt/errors"
)

// Sprintf formats args according to format. The number of conversions must
// match len(args) exactly.
func Sprintf(format string, args ...any) (string, error) {
	var b strings.Builder
	b.Grow(len(format) + 8*len(args))

	next := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			j := strings.IndexByte(format[i:], '%')
			if j < 0 {
				b.WriteString(format[i:])
				break
			}
			b.WriteString(format[i : i+j])
			i += j
			continue
		}

		if i+1 < len(format) && format[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}

		spec, end, ok := compiler.MatchSpecifier(format, i)
		if !ok {
			return "", errors.Wrapf(errors.ErrBadFormat, "no conversion at offset %d of %q", i, format)
		}
		if next >= len(args) {
			return "", errors.Wrapf(errors.ErrArgCount, "%s at offset %d has no argument (%d given)", spec.Text, i, len(args))
		}

		piece, err := render(spec, args[next])
		if err != nil {
			return "", errors.Wrapf(err, "conversion %d", next+1)
		}
		b.WriteString(piece)
		next++
		i = end
	}

	if next != len(args) {
		return "", errors.Wrapf(errors.ErrArgCount, "%d conversion(s) but %d argument(s)", next, len(args))
	}
	return b.String(), nil
}

// render formats one value under spec
func render(spec compiler.Specifier, v any) (string, error) {
	if err := Check(spec, v); err != nil {
		return "", err
	}

	verb, arg := translate(spec, v)
	return fmt.Sprintf("%"+spec.Flags+spec.Width+spec.Precision+string(verb), arg), nil
}

// translate maps a checked conversion to a fmt verb and the argument to pass it
func translate(spec compiler.Specifier, v any) (rune, any) {
	rv := reflect.ValueOf(v)

	switch spec.Verb {
	case 'd', 'i':
		return 'd', v
	case 'u':
		if isSigned(rv) {
			return 'd', uint64(rv.Int())
		}
		return 'd', v
	case 'o', 'x', 'X':
		return rune(spec.Verb), v
	case 'f', 'F', 'e', 'E', 'g', 'G':
		return rune(spec.Verb), widen(rv, v)
	case 'a':
		return 'x', widen(rv, v)
	case 'A':
		return 'X', widen(rv, v)
	case 'c':
		if rv.Kind() == reflect.String {
			r := []rune(rv.String())
			return 'c', r[0]
		}
		if isSigned(rv) {
			return 'c', rune(rv.Int())
		}
		return 'c', rune(rv.Uint())
	case 'p':
		return 'p', v
	}

	// 's' formats the value's text, so a raw value reused by a
	// back-reference prints the same as its stringified first binding
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return 's', v
	}
	return 's', compiler.Stringify(v)
}

// widen converts integers to float64 for float conversions
func widen(rv reflect.Value, v any) any {
	switch {
	case isSigned(rv):
		return float64(rv.Int())
	case isUnsigned(rv):
		return float64(rv.Uint())
	}
	return v
}
