// SPDX-License-Identifier: MPL-2.0

package params

import (
	"github.com/invowk/dais/pkg/types"
)

// Store is the immutable set of parameters bound to one command instance.
// It copies its input on construction, so later changes to the source map are
// not observed. The zero value is an empty store.
type Store struct {
	values Map
}

// NewStore creates a store holding a copy of m.
func NewStore(m Map) *Store {
	return &Store{values: m.Clone()}
}

// Get returns the value bound to name and whether it is present.
func (s *Store) Get(name types.ParamName) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name is bound.
func (s *Store) Has(name types.ParamName) bool {
	_, ok := s.Get(name)
	return ok
}

// Value returns the value bound to name, or nil when absent.
// Use Get when a bound nil must be told apart from an absent name.
func (s *Store) Value(name types.ParamName) any {
	v, _ := s.Get(name)
	return v
}

// Len returns the number of bound names.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Names returns the bound names in sorted order.
func (s *Store) Names() []types.ParamName {
	if s == nil {
		return nil
	}
	return s.values.Names()
}

// Map returns a copy of every binding.
func (s *Store) Map() Map {
	if s == nil {
		return Map{}
	}
	return s.values.Clone()
}

// Expand collects the named bindings into a new map and overlays extra on top.
// It is the usual way for a compute step to forward part of its own inputs to
// a dependency. Naming an unbound parameter returns *UnknownParamError.
func (s *Store) Expand(names []types.ParamName, extra Map) (Map, error) {
	out := make(Map, len(names)+len(extra))
	for _, name := range names {
		v, ok := s.Get(name)
		if !ok {
			return nil, &UnknownParamError{Name: name}
		}
		out[name] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out, nil
}
