package fragfmt

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fragfmt/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		tokens []any
		want   string
	}{
		{"literal only", []any{"hello world"}, "hello world"},
		{"generic index", []any{"Index %s", 5}, "Index 5"},
		{"padded index", []any{"Index %04d", 5}, "Index 0005"},
		{"multiple fragments", []any{"Multiple (%d", 2, "), %s", "safe!"}, "Multiple (2), safe!"},
		{"back-reference", []any{"Option: %s", "hi", " repeat: %1"}, "Option: hi repeat: hi"},
		{"escaped", []any{"Escaped: %%s"}, "Escaped: %s"},
		{"standalone value", []any{"total: ", 12, " items"}, "total: 12 items"},
		{"stray percent", []any{"discount: 50%"}, "discount: 50%"},
		{"arg keeps percent", []any{"user said: ", Arg("100% %d")}, "user said: 100% %d"},
		{"float back-reference", []any{"%.2f", 2.5, " == %1"}, "2.50 == 2.50"},
		{"unsigned", []any{"%u", -1}, "18446744073709551615"},
		{"truncated int back-reference", []any{"%.1s", 12345, " | %1"}, "1 | 1"},
		{"truncated float back-reference", []any{"%.2s", 1.5, " | %1"}, "1. | 1."},
		{"stringer back-reference", []any{"%#s", 2 * time.Second, " | %1"}, "2s | 2s"},
		{"struct back-reference", []any{"%+s", struct{ A int }{1}, " | %1"}, "{1} | {1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.tokens[0], tt.tokens[1:]...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []any
		sentinel error
	}{
		{"misplaced specifier", []any{"bad %s middle text"}, errors.ErrSyntax},
		{"starter not literal", []any{5, "x"}, errors.ErrType},
		{"undefined back-reference", []any{"reuse %1"}, errors.ErrReference},
		{"unbound specifier", []any{"Index %d"}, errors.ErrUnboundSpecifier},
		{"kind mismatch at render", []any{"%d", "five"}, errors.ErrConversion},
		{"count conversion", []any{"%n", new(int)}, errors.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.tokens[0], tt.tokens[1:]...)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
		})
	}
}

func TestFormatterRenderIsStable(t *testing.T) {
	f, err := New("%s", "a", "-%03d", 7, " [%2 %1]")
	require.NoError(t, err)

	first, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, "a-007 [007 a]", first)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := f.Render()
			assert.NoError(t, err)
			assert.Equal(t, first, s)
		}()
	}
	wg.Wait()

	assert.Equal(t, first, f.String())
}

func TestFormatterRaw(t *testing.T) {
	f := Must("Option: %s", 5, " hex %x", 255, " again %1", " and ", true)
	raw := f.Raw()

	want := Raw{
		Format:     "Option: %s hex %x again %s and %s",
		Options:    []any{"5", 255, 5, "true"},
		Values:     []any{5, 255},
		Specifiers: []string{"%s", "%x"},
	}
	if diff := cmp.Diff(want, raw); diff != "" {
		t.Errorf("Raw() mismatch (-want +got):\n%s", diff)
	}

	// Raw hands out copies
	raw.Options[0] = "changed"
	raw.Values[0] = 0
	again := f.Raw()
	assert.Equal(t, "5", again.Options[0])
	assert.Equal(t, 5, again.Values[0])
}

func TestFormatterStringOnFailure(t *testing.T) {
	f := Must("%d", "five")
	s := f.String()
	assert.Contains(t, s, "%!(fragfmt: ")
	assert.Contains(t, s, "conversion mismatch")
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() {
		Must("reuse %1")
	})
}

func TestEngineRenderer(t *testing.T) {
	var gotFormat string
	var gotArgs []any
	e := NewEngine(WithRenderer(RendererFunc(func(format string, args []any) (string, error) {
		gotFormat, gotArgs = format, args
		return "rendered", nil
	})))

	s, err := e.Format("n=%d", 3, " %1")
	require.NoError(t, err)
	assert.Equal(t, "rendered", s)
	assert.Equal(t, "n=%d %d", gotFormat)
	assert.Equal(t, []any{3, 3}, gotArgs)
}

func TestEngineRendererErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	e := NewEngine(WithRenderer(RendererFunc(func(string, []any) (string, error) {
		return "", boom
	})))

	_, err := e.Format("x")
	assert.Equal(t, boom, err)
}

func TestEngineStrictKinds(t *testing.T) {
	strict := NewEngine(WithStrictKinds(true))

	_, err := strict.New("%d", "five")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConversion))

	// Lenient engines defer the same mismatch to render time
	f, err := NewEngine().New("%d", "five")
	require.NoError(t, err)
	_, err = f.Render()
	assert.True(t, errors.Is(err, errors.ErrConversion))
}

func TestEngineLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e := NewEngine(WithLogger(zap.New(core).Sugar()))

	_, err := e.Format("%d", 1)
	require.NoError(t, err)
	_, err = e.Format("%d", "one")
	require.Error(t, err)

	compiled := logs.FilterMessage("compiled format").All()
	require.Len(t, compiled, 2)
	assert.Equal(t, "compiler", compiled[0].LoggerName)

	failed := logs.FilterMessage("render failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "%d", failed[0].ContextMap()["format"])
}
