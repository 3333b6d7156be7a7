package cprintf

import (
	"reflect"
	"unicode/utf8"

	"github.com/teranos/fragfmt/compiler"
	"github.com/teranos/fragfmt/errors"
)

// Check reports whether v can be rendered by spec. It is usable as a
// compiler.Checker.
func Check(spec compiler.Specifier, v any) error {
	rv := reflect.ValueOf(v)

	switch spec.Kind() {
	case compiler.KindInteger:
		if isSigned(rv) || isUnsigned(rv) {
			return nil
		}
		if (spec.Verb == 'x' || spec.Verb == 'X') && isText(rv) {
			return nil
		}
	case compiler.KindFloat:
		if isFloat(rv) || isSigned(rv) || isUnsigned(rv) {
			return nil
		}
	case compiler.KindChar:
		if isSigned(rv) || isUnsigned(rv) {
			return nil
		}
		if rv.Kind() == reflect.String && utf8.RuneCountInString(rv.String()) == 1 {
			return nil
		}
	case compiler.KindString:
		return nil
	case compiler.KindPointer:
		switch rv.Kind() {
		case reflect.Ptr, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
			return nil
		}
	case compiler.KindCount:
		return errors.Wrapf(errors.ErrUnsupported, "%s writes through a pointer and cannot be rendered", spec.Text)
	}

	return errors.Wrapf(errors.ErrConversion, "%s expects %s, got %s", spec.Text, spec.Kind(), typeName(v))
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

func isSigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(rv reflect.Value) bool {
	return rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64
}

// isText matches strings and byte slices, which %x renders as hex dumps
func isText(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.String:
		return true
	case reflect.Slice:
		return rv.Type().Elem().Kind() == reflect.Uint8
	}
	return false
}
