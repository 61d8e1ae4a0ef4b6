// SPDX-License-Identifier: MPL-2.0

package command

import (
	"slices"
	"sync"

	"github.com/invowk/dais/internal/dag"
	"github.com/invowk/dais/pkg/types"
)

// Catalog is a named set of declared command types. It is safe for
// concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	types map[types.TypeName]*Type
}

// NewCatalog creates an empty catalog and registers each of ts.
func NewCatalog(ts ...*Type) (*Catalog, error) {
	c := &Catalog{types: make(map[types.TypeName]*Type, len(ts))}
	for _, t := range ts {
		if err := c.Register(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds a declared type. Names are unique within a catalog.
func (c *Catalog) Register(t *Type) error {
	if t == nil {
		return &ConfigError{Op: "register", Err: ErrNilType}
	}
	if !t.Declared() {
		return &ConfigError{Type: t.name, Op: "register", Err: ErrNotDeclared}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.types[t.name]; exists {
		return &ConfigError{Type: t.name, Op: "register", Err: ErrTypeExists}
	}
	c.types[t.name] = t
	return nil
}

// Resolve looks a type up by name.
func (c *Catalog) Resolve(name types.TypeName) (*Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.types[name]
	return t, ok
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types)
}

// List returns every registered type sorted by name.
func (c *Catalog) List() []*Type {
	c.mu.RLock()
	out := make([]*Type, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, t)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Type) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Order returns the names of every registered type, and of every type they
// reference through dependency defaults, with referenced types first.
// Cyclic references fail with a *ConfigError wrapping *dag.CycleError.
func (c *Catalog) Order() ([]types.TypeName, error) {
	g := dag.New[types.TypeName]()
	seen := make(map[*Type]bool)

	var visit func(t *Type)
	visit = func(t *Type) {
		if seen[t] {
			return
		}
		seen[t] = true
		g.AddNode(t.name)
		for _, ref := range t.references() {
			g.AddEdge(ref.name, t.name)
			visit(ref)
		}
	}
	for _, t := range c.List() {
		visit(t)
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return nil, &ConfigError{Op: "validate", Err: err}
	}
	return order, nil
}

// Validate reports reference cycles between types.
func (c *Catalog) Validate() error {
	_, err := c.Order()
	return err
}
