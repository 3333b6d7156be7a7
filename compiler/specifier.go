package compiler

import "strings"

// Kind groups conversion characters by the kind of value they render
type Kind int

const (
	KindInteger Kind = iota // d i u o x X
	KindFloat               // f F e E g G a A
	KindChar                // c
	KindString              // s
	KindPointer             // p
	KindCount               // n
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindPointer:
		return "pointer"
	case KindCount:
		return "count"
	default:
		return "unknown"
	}
}

const (
	flagChars = "-+ #0"
	verbChars = "diuoxXfFeEgGaAcspn"
)

// lengthModifiers in match order: two-letter forms first
var lengthModifiers = []string{"hh", "ll", "h", "l", "L", "q", "j", "z", "t"}

// Specifier is a parsed printf conversion: %[flags][width][.precision][length]conv
type Specifier struct {
	Text      string // full source text, e.g. "%-08.3lf"
	Flags     string
	Width     string
	Precision string // includes the leading '.', empty when absent
	Length    string
	Verb      byte
}

// String returns the specifier's source text
func (s Specifier) String() string {
	return s.Text
}

// Kind returns the value kind the conversion renders
func (s Specifier) Kind() Kind {
	switch s.Verb {
	case 'd', 'i', 'u', 'o', 'x', 'X':
		return KindInteger
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		return KindFloat
	case 'c':
		return KindChar
	case 's':
		return KindString
	case 'p':
		return KindPointer
	default:
		return KindCount
	}
}

// IsGeneric reports whether values bound to this specifier are stringified
func (s Specifier) IsGeneric() bool {
	return s.Verb == 's'
}

// MatchSpecifier matches the specifier grammar starting at s[i], which must be
// a '%'. It returns the specifier and the index just past it. Escape parity is
// the caller's concern.
func MatchSpecifier(s string, i int) (Specifier, int, bool) {
	if i < 0 || i >= len(s) || s[i] != '%' {
		return Specifier{}, i, false
	}
	j := i + 1

	start := j
	for j < len(s) && strings.IndexByte(flagChars, s[j]) >= 0 {
		j++
	}
	flags := s[start:j]

	start = j
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	width := s[start:j]

	var precision string
	if j < len(s) && s[j] == '.' {
		start = j
		j++
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		precision = s[start:j]
	}

	var length string
	for _, m := range lengthModifiers {
		if strings.HasPrefix(s[j:], m) {
			length = m
			j += len(m)
			break
		}
	}

	if j >= len(s) || strings.IndexByte(verbChars, s[j]) < 0 {
		return Specifier{}, i, false
	}

	spec := Specifier{
		Text:      s[i : j+1],
		Flags:     flags,
		Width:     width,
		Precision: precision,
		Length:    length,
		Verb:      s[j],
	}
	return spec, j + 1, true
}

// ParseSpecifier parses text that must be exactly one specifier
func ParseSpecifier(text string) (Specifier, bool) {
	spec, end, ok := MatchSpecifier(text, 0)
	if !ok || end != len(text) {
		return Specifier{}, false
	}
	return spec, true
}

// TrailingSpecifier splits a literal into its base text and the specifier at its
// tail. A candidate preceded by an odd run of '%' is an escaped percent followed
// by plain text, not a specifier.
func TrailingSpecifier(text string) (string, Specifier, bool) {
	i := strings.LastIndexByte(text, '%')
	if i < 0 {
		return text, Specifier{}, false
	}
	spec, end, ok := MatchSpecifier(text, i)
	if !ok || end != len(text) {
		return text, Specifier{}, false
	}
	if percentsBefore(text, i)%2 != 0 {
		return text, Specifier{}, false
	}
	return text[:i], spec, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
