// Package compiler turns an interleaved sequence of literal fragments and
// values into one printf-style format string and its ordered options.
//
// Grammar per literal fragment:
//
//	fragment  = { text | "%%" | backref } [ specifier ]
//	backref   = "%" digit { digit }
//	specifier = "%" [flags] [width] ["." [precision]] [length] conv
//
// A specifier is only legal at the very end of a fragment, where it binds the
// next token as its value. Back-references %N re-emit the Nth bound
// specifier together with its raw value.
package compiler

import (
	"strconv"
	"time"

	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Result is the compiled output of one token list
type Result struct {
	Format   string
	Options  []any
	Registry Registry
}

// Conversions counts the conversions present in Format, skipping escaped
// percents. For a successful compile it equals len(Options).
func (r *Result) Conversions() int {
	n := 0
	for i := 0; i < len(r.Format); {
		if r.Format[i] != '%' {
			i++
			continue
		}
		end := percentRun(r.Format, i)
		if (end-i)%2 == 0 {
			i = end
			continue
		}
		if _, next, ok := MatchSpecifier(r.Format, end-1); ok {
			n++
			i = next
			continue
		}
		i = end
	}
	return n
}

// Checker validates a value against the conversion it is about to be bound to.
type Checker func(spec Specifier, value any) error

// Option configures a Compiler
type Option func(*Compiler)

// WithLogger sets the logger used for compile diagnostics
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Compiler) {
		c.logger = l
	}
}

// WithChecker enables strict mode: every specifier-bound value is checked
// before it is bound, instead of leaving kind errors to render time.
func WithChecker(check Checker) Option {
	return func(c *Compiler) {
		c.check = check
	}
}

// Compiler compiles token lists. It holds configuration only and is safe for
// concurrent use.
type Compiler struct {
	logger *zap.SugaredLogger
	check  Checker
}

// New creates a Compiler
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCompiler = New()

// Compile compiles tokens with the default Compiler
func Compile(starter any, rest ...any) (*Result, error) {
	return defaultCompiler.Compile(starter, rest...)
}

// state is the accumulator threaded through the fold over tokens
type state struct {
	out       []byte
	options   []any
	registry  Registry
	pending   *Specifier
	pendingAt int
	backrefs  int
}

// Compile compiles the starter literal and the remaining tokens into a Result.
// Failures are *Error values; no partial result is returned.
func (c *Compiler) Compile(starter any, rest ...any) (*Result, error) {
	started := time.Now()
	total := len(rest) + 1
	log := c.log()

	if _, ok := literalText(starter); !ok {
		err := newError(ErrorKindType, errors.ErrType, "the first argument must be a literal string").
			withToken(0, total).
			withSuggestion("start the call with a string literal, e.g. (\"%d items\", n)")
		log.Debugw("compile failed", logger.FieldKind, string(err.Kind), logger.FieldToken, 0)
		return nil, err
	}

	st := state{}
	var err error
	for i := 0; i < total; i++ {
		tok := starter
		if i > 0 {
			tok = rest[i-1]
		}
		st, err = c.step(st, i, total, tok)
		if err != nil {
			if ce, ok := err.(*Error); ok {
				log.Debugw("compile failed", logger.FieldKind, string(ce.Kind), logger.FieldToken, ce.Token, logger.FieldError, ce.Message)
			}
			return nil, err
		}
	}

	if st.pending != nil {
		err := newError(ErrorKindSyntax, errors.ErrUnboundSpecifier, "a formatter must be followed by a value").
			withToken(st.pendingAt, total).
			withSuggestion("pass a value after the fragment ending in " + st.pending.Text).
			withSuggestion("escape a literal percent as %%")
		log.Debugw("compile failed", logger.FieldKind, string(err.Kind), logger.FieldToken, err.Token, logger.FieldError, err.Message)
		return nil, err
	}

	result := &Result{
		Format:   string(st.out),
		Options:  st.options,
		Registry: st.registry,
	}
	if log.Desugar().Core().Enabled(zapcore.DebugLevel) {
		log.Debugw("compiled format",
			logger.FieldTokens, total,
			logger.FieldConversions, len(result.Options),
			logger.FieldBackrefs, st.backrefs,
			logger.FieldFormat, result.Format,
			logger.FieldDurationUS, time.Since(started).Microseconds())
	}
	return result, nil
}

func (c *Compiler) log() *zap.SugaredLogger {
	if c.logger != nil {
		return c.logger
	}
	return logger.ComponentLogger("compiler")
}

// step consumes one token
func (c *Compiler) step(st state, index, total int, tok any) (state, error) {
	// A specifier from the previous fragment binds this token, literal or not
	if st.pending != nil {
		return c.bind(st, index, total, tok)
	}

	if text, ok := literalText(tok); ok {
		return c.literal(st, index, total, text)
	}

	// Standalone value: implicit %s, not registered for reuse
	st.out = append(st.out, "%s"...)
	st.options = append(st.options, Stringify(tok))
	return st, nil
}

func (c *Compiler) bind(st state, index, total int, tok any) (state, error) {
	spec := *st.pending
	raw := Unwrap(tok)

	if c.check != nil {
		if err := c.check(spec, raw); err != nil {
			ce := newError(ErrorKindConversion, err, err.Error()).withToken(index, total)
			return st, ce
		}
	}

	option := raw
	if spec.IsGeneric() {
		option = Stringify(raw)
	}

	st.out = append(st.out, spec.Text...)
	st.options = append(st.options, option)
	st.registry = append(st.registry, Binding{Specifier: spec, Value: raw})
	st.pending = nil
	return st, nil
}

func (c *Compiler) literal(st state, index, total int, text string) (state, error) {
	base, spec, found := TrailingSpecifier(text)

	var err error
	st, err = c.emitBase(st, index, total, text, base)
	if err != nil {
		return st, err
	}

	if found {
		st.pending = &spec
		st.pendingAt = index
	}
	return st, nil
}

// emitBase validates base, resolves its back-references and appends it
func (c *Compiler) emitBase(st state, index, total int, text, base string) (state, error) {
	for i := 0; i < len(base); {
		if base[i] != '%' {
			j := i
			for j < len(base) && base[j] != '%' {
				j++
			}
			st.out = append(st.out, base[i:j]...)
			i = j
			continue
		}

		end := percentRun(base, i)
		run := end - i
		st.out = append(st.out, base[i:i+run-run%2]...)
		if run%2 == 0 {
			i = end
			continue
		}

		// base[end-1] is an unescaped '%'
		at := end - 1
		if spec, _, ok := MatchSpecifier(base, at); ok {
			return st, newError(ErrorKindSyntax, errors.ErrSyntax, "formatters must appear only at the end of a literal fragment").
				withToken(index, total).
				withFragment(text, at).
				withSuggestion("end the fragment after " + spec.Text + " and pass its value as the next argument").
				withSuggestion("escape a literal percent as %%")
		}

		digits := end
		for digits < len(base) && isDigit(base[digits]) {
			digits++
		}
		if digits > end {
			ref := base[end:digits]
			n, convErr := strconv.Atoi(ref)
			binding, ok := st.registry.Lookup(n)
			if convErr != nil || !ok {
				return st, newError(ErrorKindReference, errors.ErrReference, "option "+ref+" must be defined before it can be reused").
					withToken(index, total).
					withFragment(text, at).
					withSuggestion(strconv.Itoa(st.registry.Len()) + " option(s) bound so far; only options bound to a specifier can be reused")
			}
			st.out = append(st.out, binding.Specifier.Text...)
			st.options = append(st.options, binding.Value)
			st.backrefs++
			i = digits
			continue
		}

		// Stray '%': keep it literal in the output format
		st.out = append(st.out, "%%"...)
		i = end
	}
	return st, nil
}
