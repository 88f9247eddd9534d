package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/randalmurphal/funcfmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrNotFound is returned when a named template is not in the catalog.
	ErrNotFound = errors.New("template not found")

	// ErrUnsupportedFormat is returned for catalog files whose extension
	// is neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Catalog is a named collection of compiled templates sharing one formatter
// table. All methods are safe for concurrent use; renders proceed under a
// read lock, so reloads never expose a half-updated catalog.
//
// The zero value is not usable. Create catalogs with New.
type Catalog[T any] struct {
	formatters funcfmt.FormatMap[T]

	mu     sync.RWMutex
	pieces map[string]funcfmt.FormatPieces[T]
	defs   map[string]Definition
}

// New creates an empty catalog whose templates resolve against formatters.
// The map is captured as-is; do not mutate it afterwards.
func New[T any](formatters funcfmt.FormatMap[T]) *Catalog[T] {
	return &Catalog[T]{
		formatters: formatters,
		pieces:     make(map[string]funcfmt.FormatPieces[T]),
		defs:       make(map[string]Definition),
	}
}

// Add compiles template and stores it under name, replacing any previous
// entry with that name. The error, if any, is the compile error from
// funcfmt wrapped with the entry name.
func (c *Catalog[T]) Add(name, template string) error {
	p, err := c.formatters.ToFormatPieces(template)
	if err != nil {
		return fmt.Errorf("template %q: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pieces[name] = p
	c.defs[name] = Definition{Template: template}
	return nil
}

// Lookup returns the compiled pieces stored under name. Callers can render
// the result directly, bypassing the catalog's map lookup on hot paths.
func (c *Catalog[T]) Lookup(name string) (funcfmt.FormatPieces[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pieces[name]
	return p, ok
}

// Render renders the named template against data. Returns an error wrapping
// ErrNotFound when no template with that name is stored.
func (c *Catalog[T]) Render(name string, data *T) (string, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p.Render(data)
}

// Names returns the stored template names, sorted alphabetically.
func (c *Catalog[T]) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.pieces))
	for name := range c.pieces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored templates.
func (c *Catalog[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pieces)
}

// Definitions returns a copy of the stored definitions, keyed by name.
func (c *Catalog[T]) Definitions() map[string]Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make(map[string]Definition, len(c.defs))
	for name, def := range c.defs {
		defs[name] = def
	}
	return defs
}

// Remove deletes the named template. Removing an absent name is a no-op.
func (c *Catalog[T]) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pieces, name)
	delete(c.defs, name)
}
