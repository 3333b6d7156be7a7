package fragfmt

import (
	"github.com/teranos/fragfmt/compiler"
	"github.com/teranos/fragfmt/internal/cprintf"
	"github.com/teranos/fragfmt/logger"
	"go.uber.org/zap"
)

// Renderer is the formatting primitive: it renders a C-style format string
// with exactly one argument per conversion.
type Renderer interface {
	Render(format string, args []any) (string, error)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(format string, args []any) (string, error)

// Render calls f
func (f RendererFunc) Render(format string, args []any) (string, error) {
	return f(format, args)
}

// DefaultRenderer renders with C printf conversion semantics
var DefaultRenderer Renderer = RendererFunc(func(format string, args []any) (string, error) {
	return cprintf.Sprintf(format, args...)
})

// Option configures an Engine
type Option func(*Engine)

// WithRenderer replaces the formatting primitive
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithLogger sets the logger for compile diagnostics
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithStrictKinds checks every specifier-bound value against its conversion
// at compile time.
func WithStrictKinds(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// Engine compiles and renders with a fixed configuration. It is safe for
// concurrent use.
type Engine struct {
	renderer Renderer
	logger   *zap.SugaredLogger
	strict   bool
	compiler *compiler.Compiler
}

// NewEngine creates an Engine using DefaultRenderer unless configured otherwise
func NewEngine(opts ...Option) *Engine {
	e := &Engine{renderer: DefaultRenderer}
	for _, opt := range opts {
		opt(e)
	}

	var copts []compiler.Option
	if e.logger != nil {
		copts = append(copts, compiler.WithLogger(e.logger.Named("compiler")))
	}
	if e.strict {
		copts = append(copts, compiler.WithChecker(cprintf.Check))
	}
	e.compiler = compiler.New(copts...)
	return e
}

// New compiles the tokens into a Formatter bound to this engine's renderer
func (e *Engine) New(starter any, rest ...any) (*Formatter, error) {
	res, err := e.compiler.Compile(starter, rest...)
	if err != nil {
		return nil, err
	}
	return &Formatter{result: res, renderer: e.renderer}, nil
}

// Format compiles and renders. The registry is discarded.
func (e *Engine) Format(starter any, rest ...any) (string, error) {
	f, err := e.New(starter, rest...)
	if err != nil {
		return "", err
	}
	s, err := f.Render()
	if err != nil {
		e.log().Debugw("render failed", logger.FieldFormat, f.result.Format, logger.FieldError, err)
		return "", err
	}
	return s, nil
}

func (e *Engine) log() *zap.SugaredLogger {
	if e.logger != nil {
		return e.logger
	}
	return logger.ComponentLogger("fragfmt")
}
