package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSpecifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		at    int
		want  Specifier
		end   int
		ok    bool
	}{
		{
			name:  "plain s",
			input: "%s",
			want:  Specifier{Text: "%s", Verb: 's'},
			end:   2,
			ok:    true,
		},
		{
			name:  "zero padded width",
			input: "%04d",
			want:  Specifier{Text: "%04d", Flags: "0", Width: "4", Verb: 'd'},
			end:   4,
			ok:    true,
		},
		{
			name:  "all parts",
			input: "%-+#08.3lf",
			want:  Specifier{Text: "%-+#08.3lf", Flags: "-+#0", Width: "8", Precision: ".3", Length: "l", Verb: 'f'},
			end:   10,
			ok:    true,
		},
		{
			name:  "bare precision dot",
			input: "%.e",
			want:  Specifier{Text: "%.e", Precision: ".", Verb: 'e'},
			end:   3,
			ok:    true,
		},
		{
			name:  "two letter length",
			input: "%llu and more",
			want:  Specifier{Text: "%llu", Length: "ll", Verb: 'u'},
			end:   4,
			ok:    true,
		},
		{
			name:  "hh length",
			input: "%hhx",
			want:  Specifier{Text: "%hhx", Length: "hh", Verb: 'x'},
			end:   4,
			ok:    true,
		},
		{
			name:  "space flag",
			input: "% d",
			want:  Specifier{Text: "% d", Flags: " ", Verb: 'd'},
			end:   3,
			ok:    true,
		},
		{
			name:  "in the middle",
			input: "ab%Xcd",
			at:    2,
			want:  Specifier{Text: "%X", Verb: 'X'},
			end:   4,
			ok:    true,
		},
		{name: "back-reference is not a specifier", input: "%1", ok: false},
		{name: "unknown conversion", input: "%z", ok: false},
		{name: "length without conversion", input: "%l", ok: false},
		{name: "lone percent", input: "%", ok: false},
		{name: "not at percent", input: "s%", ok: false},
		{name: "star width unsupported", input: "%*d", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, end, ok := MatchSpecifier(tt.input, tt.at)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestTrailingSpecifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBase string
		wantSpec string
		found    bool
	}{
		{"tail specifier", "Index %s", "Index ", "%s", true},
		{"width", "Index %04d", "Index ", "%04d", true},
		{"whole literal", "%d", "", "%d", true},
		{"escaped", "Escaped: %%s", "Escaped: %%s", "", false},
		{"escaped pair then specifier", "100%%%d", "100%%", "%d", true},
		{"two pairs escaped", "x%%%%d", "x%%%%d", "", false},
		{"not at tail", "bad %s middle text", "bad %s middle text", "", false},
		{"back-reference tail", "repeat %1", "repeat %1", "", false},
		{"no percent", "plain text", "plain text", "", false},
		{"trailing lone percent", "50%", "50%", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, spec, found := TrailingSpecifier(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantSpec, spec.Text)
		})
	}
}

func TestParseSpecifier(t *testing.T) {
	spec, ok := ParseSpecifier("%5.2f")
	require.True(t, ok)
	assert.Equal(t, KindFloat, spec.Kind())

	_, ok = ParseSpecifier("%5.2f ")
	assert.False(t, ok)
}

func TestSpecifierKind(t *testing.T) {
	tests := map[byte]Kind{
		'd': KindInteger, 'i': KindInteger, 'u': KindInteger, 'o': KindInteger, 'x': KindInteger, 'X': KindInteger,
		'f': KindFloat, 'F': KindFloat, 'e': KindFloat, 'E': KindFloat, 'g': KindFloat, 'G': KindFloat, 'a': KindFloat, 'A': KindFloat,
		'c': KindChar,
		's': KindString,
		'p': KindPointer,
		'n': KindCount,
	}
	for verb, want := range tests {
		spec := Specifier{Text: "%" + string(verb), Verb: verb}
		assert.Equal(t, want, spec.Kind(), "verb %c", verb)
		assert.Equal(t, verb == 's', spec.IsGeneric())
	}
	assert.Equal(t, "integer", KindInteger.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestEscapeParity(t *testing.T) {
	s := "a%%%b"
	assert.False(t, IsEscaped(s, 1))
	assert.True(t, IsEscaped(s, 2))
	assert.False(t, IsEscaped(s, 3))
	assert.Equal(t, 4, percentRun(s, 1))
	assert.Equal(t, 2, percentsBefore(s, 3))
}
