package fragfmt

import (
	"github.com/teranos/fragfmt/compiler"
)

// Formatter is a compiled format call. It renders the same output every time
// and may be shared between goroutines.
type Formatter struct {
	result   *compiler.Result
	renderer Renderer
}

// Raw is the compiled form of a Formatter
type Raw struct {
	Format     string   `json:"format" yaml:"format" toml:"format"`
	Options    []any    `json:"options" yaml:"options" toml:"options"`
	Values     []any    `json:"values" yaml:"values" toml:"values"`
	Specifiers []string `json:"specifiers" yaml:"specifiers" toml:"specifiers"`
}

// Render renders the compiled format with its options. Renderer errors are
// returned unchanged.
func (f *Formatter) Render() (string, error) {
	return f.renderer.Render(f.result.Format, f.result.Options)
}

// String renders the Formatter, reporting failure inline the way fmt does
func (f *Formatter) String() string {
	s, err := f.Render()
	if err != nil {
		return "%!(fragfmt: " + err.Error() + ")"
	}
	return s
}

// Raw returns copies of the format string, options, and the bound values and
// specifiers available for back-reference.
func (f *Formatter) Raw() Raw {
	options := make([]any, len(f.result.Options))
	copy(options, f.result.Options)
	return Raw{
		Format:     f.result.Format,
		Options:    options,
		Values:     f.result.Registry.Values(),
		Specifiers: f.result.Registry.Specifiers(),
	}
}
