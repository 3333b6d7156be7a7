package cprintf

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fragfmt/compiler"
	"github.com/teranos/fragfmt/errors"
)

func TestSprintf(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"no conversions", "plain text", nil, "plain text"},
		{"escaped percent", "100%% done", nil, "100% done"},
		{"decimal", "%d items", []any{3}, "3 items"},
		{"i is decimal", "%i", []any{-7}, "-7"},
		{"length modifiers ignored", "%lld/%hhd/%zu", []any{int64(1), int8(2), uint(3)}, "1/2/3"},
		{"unsigned reinterprets negatives", "%u", []any{-1}, "18446744073709551615"},
		{"zero pad", "%04d", []any{5}, "0005"},
		{"left align", "%-5d|", []any{42}, "42   |"},
		{"plus flag", "%+d", []any{5}, "+5"},
		{"space flag", "% d", []any{5}, " 5"},
		{"octal alternate", "%#o", []any{8}, "010"},
		{"hex", "%x %X", []any{255, 255}, "ff FF"},
		{"hex of string", "%x", []any{"hi"}, "6869"},
		{"fixed", "%5.2f", []any{3.14159}, " 3.14"},
		{"fixed widens integers", "%f", []any{3}, "3.000000"},
		{"capital F", "%.1F", []any{2.5}, "2.5"},
		{"zero padded float", "%05.1f", []any{2.5}, "002.5"},
		{"exponent", "%e", []any{1234.5}, "1.234500e+03"},
		{"general", "%g", []any{0.0001}, "0.0001"},
		{"bare precision", "%.f", []any{2.0}, "2"},
		{"hex float", "%a", []any{1.0}, "0x1p+00"},
		{"char from integer", "%c", []any{65}, "A"},
		{"char from string", "%c", []any{"é"}, "é"},
		{"string", "%s!", []any{"hi"}, "hi!"},
		{"string precision truncates", "%.3s", []any{"abcdef"}, "abc"},
		{"string width", "%5s|%-5s|", []any{"ab", "cd"}, "   ab|cd   |"},
		{"generic value", "%s", []any{5}, "5"},
		{"stringer", "%s", []any{2 * time.Second}, "2s"},
		{"nil", "%s", []any{nil}, "<nil>"},
		{"byte slice", "%s", []any{[]byte("raw")}, "raw"},
		{"precision truncates integer text", "%.1s", []any{12345}, "1"},
		{"precision truncates float text", "%.2s", []any{1.5}, "1."},
		{"alternate flag on stringer", "%#s", []any{2 * time.Second}, "2s"},
		{"plus flag on struct", "%+s", []any{struct{ A int }{1}}, "{1}"},
		{"width pads value text", "%4s|", []any{7}, "   7|"},
		{"mixed", "Multiple (%d), %s", []any{2, "safe!"}, "Multiple (2), safe!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sprintf(tt.format, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSprintfPointer(t *testing.T) {
	n := 1
	got, err := Sprintf("%p", &n)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "0x"), got)
}

func TestSprintfErrors(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []any
		sentinel error
	}{
		{"missing argument", "%d and %d", []any{1}, errors.ErrArgCount},
		{"extra argument", "%d", []any{1, 2}, errors.ErrArgCount},
		{"argument without conversion", "text", []any{1}, errors.ErrArgCount},
		{"unknown conversion", "%z", nil, errors.ErrBadFormat},
		{"trailing percent", "50%", nil, errors.ErrBadFormat},
		{"star width", "%*d", []any{3, 4}, errors.ErrBadFormat},
		{"string under integer", "%d", []any{"five"}, errors.ErrConversion},
		{"float under integer", "%d", []any{1.5}, errors.ErrConversion},
		{"string under float", "%f", []any{"1.5"}, errors.ErrConversion},
		{"long string under char", "%c", []any{"ab"}, errors.ErrConversion},
		{"integer under pointer", "%p", []any{12}, errors.ErrConversion},
		{"nil under integer", "%d", []any{nil}, errors.ErrConversion},
		{"count conversion", "%n", []any{new(int)}, errors.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sprintf(tt.format, tt.args...)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.True(t, errors.IsRenderError(err))
		})
	}
}

func TestCheck(t *testing.T) {
	spec := func(text string) compiler.Specifier {
		s, ok := compiler.ParseSpecifier(text)
		require.True(t, ok, text)
		return s
	}

	assert.NoError(t, Check(spec("%d"), int32(3)))
	assert.NoError(t, Check(spec("%d"), time.Second))
	assert.NoError(t, Check(spec("%x"), []byte{1}))
	assert.NoError(t, Check(spec("%g"), uint8(3)))
	assert.NoError(t, Check(spec("%s"), struct{}{}))
	assert.NoError(t, Check(spec("%p"), map[string]int{}))

	err := Check(spec("%5d"), "five")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConversion))
	assert.Contains(t, err.Error(), "%5d expects integer, got string")
}
