// Package catalog loads named messages from TOML or YAML files and renders
// them through a fragfmt Engine.
//
// Each message is a token list exactly as it would be passed to
// fragfmt.Format. Entries are compiled when the file is loaded, so a broken
// message fails the load rather than the render. An entry whose last literal
// ends in a specifier is parameterized: its values are supplied to Render.
package catalog

import (
	"sort"
	"sync"
	"time"

	"github.com/teranos/fragfmt"
	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
	"github.com/teranos/fragfmt/version"
	"go.uber.org/zap"
)

// Entry is one named message
type Entry struct {
	Name        string
	Description string
	Tokens      []any
	Path        string // file the entry was loaded from

	formatter *fragfmt.Formatter
}

// Parameterized reports whether the entry needs values at render time
func (e *Entry) Parameterized() bool {
	return e.formatter == nil
}

// Formatter returns the precompiled formatter, or nil for parameterized entries
func (e *Entry) Formatter() *fragfmt.Formatter {
	return e.formatter
}

// Option configures a Catalog
type Option func(*Catalog)

// WithEngine sets the engine used to compile and render entries
func WithEngine(e *fragfmt.Engine) Option {
	return func(c *Catalog) {
		c.engine = e
	}
}

// WithLogger sets the catalog logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Catalog) {
		c.logger = l
	}
}

// WithVersion sets the fragfmt version checked against each file's requires
// constraint. Defaults to version.Version.
func WithVersion(v string) Option {
	return func(c *Catalog) {
		c.version = v
	}
}

// Catalog is a set of named messages. Reads are safe during reloads: a load
// builds a complete entry table and swaps it in only on success.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	paths   []string

	engine  *fragfmt.Engine
	logger  *zap.SugaredLogger
	version string
}

// New creates an empty Catalog
func New(opts ...Option) *Catalog {
	c := &Catalog{
		entries: make(map[string]*Entry),
		version: version.Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = fragfmt.NewEngine()
	}
	if c.logger == nil {
		c.logger = logger.ComponentLogger("catalog")
	}
	return c
}

// Load creates a Catalog from paths
func Load(paths ...string) (*Catalog, error) {
	c := New()
	if err := c.Load(paths...); err != nil {
		return nil, err
	}
	return c, nil
}

// Load replaces the catalog's entries with those in paths. Later files
// override earlier ones on name clashes. On error the catalog is unchanged.
func (c *Catalog) Load(paths ...string) error {
	started := time.Now()

	entries, err := c.build(paths)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries = entries
	c.paths = append([]string(nil), paths...)
	c.mu.Unlock()

	c.logger.Infow("catalog loaded",
		logger.FieldMessages, len(entries),
		logger.FieldCount, len(paths),
		logger.FieldDurationUS, time.Since(started).Microseconds())
	return nil
}

// Reload re-reads the files of the last successful Load
func (c *Catalog) Reload() error {
	return c.Load(c.Paths()...)
}

// Paths returns the files of the last successful Load
func (c *Catalog) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.paths...)
}

// Lookup returns the named entry
func (c *Catalog) Lookup(name string) (*Entry, error) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return nil, errors.WithHint(
			errors.NewNotFoundError("message %q", name),
			"list available messages with: fragfmt catalog list")
	}
	return entry, nil
}

// Names returns all entry names in sorted order
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders the named entry. args are appended to the entry's tokens,
// binding a trailing specifier when the entry is parameterized.
func (c *Catalog) Render(name string, args ...any) (string, error) {
	entry, err := c.Lookup(name)
	if err != nil {
		return "", err
	}

	if len(args) == 0 && entry.formatter != nil {
		return entry.formatter.Render()
	}

	tokens := make([]any, 0, len(entry.Tokens)+len(args))
	tokens = append(tokens, entry.Tokens...)
	tokens = append(tokens, args...)
	return c.engine.Format(tokens[0], tokens[1:]...)
}

// build reads and compiles every file into a fresh entry table
func (c *Catalog) build(paths []string) (map[string]*Entry, error) {
	entries := make(map[string]*Entry)

	for _, path := range paths {
		f, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := c.checkRequires(path, f.Requires); err != nil {
			return nil, err
		}

		log := logger.ChildLogger(c.logger, logger.FieldPath, path)
		for _, name := range sortedNames(f.Messages) {
			entry, err := c.compileEntry(path, name, f.Messages[name])
			if err != nil {
				return nil, err
			}
			if prev, ok := entries[name]; ok {
				log.Warnw("message overridden",
					logger.FieldMessage, name,
					"previous", prev.Path)
			}
			entries[name] = entry
		}

		log.Debugw("catalog file read",
			logger.FieldMessages, len(f.Messages),
			logger.FieldRequires, f.Requires)
	}

	return entries, nil
}

func (c *Catalog) compileEntry(path, name string, msg message) (*Entry, error) {
	if len(msg.Tokens) == 0 {
		return nil, errors.Newf("message %q in %s has no tokens", name, path)
	}

	entry := &Entry{
		Name:        name,
		Description: msg.Description,
		Tokens:      decodeTokens(msg.Tokens),
		Path:        path,
	}

	f, err := c.engine.New(entry.Tokens[0], entry.Tokens[1:]...)
	switch {
	case err == nil:
		entry.formatter = f
	case errors.Is(err, errors.ErrUnboundSpecifier):
		// parameterized: values arrive at render time
	default:
		return nil, errors.Wrapf(err, "message %q in %s", name, path)
	}
	return entry, nil
}

func (c *Catalog) checkRequires(path, requires string) error {
	if requires == "" {
		return nil
	}

	ok, err := version.Satisfies(c.version, requires)
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	if !ok {
		return errors.WithHint(
			errors.Wrapf(errors.ErrIncompatible, "%s requires fragfmt %s, running %s", path, requires, c.version),
			"upgrade fragfmt or relax the requires constraint")
	}
	return nil
}

func sortedNames(messages map[string]message) []string {
	names := make([]string, 0, len(messages))
	for name := range messages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
