// SPDX-License-Identifier: MPL-2.0

package params

import (
	"slices"

	"github.com/invowk/dais/pkg/types"
)

type (
	// Map is a set of named parameter values. A key that is present with a nil
	// value is still present: presence, not truthiness, is what counts.
	Map map[types.ParamName]any

	// Reader is a read-only view over named values.
	Reader interface {
		// Get returns the value bound to name and whether it is present.
		Get(name types.ParamName) (any, bool)
		// Has reports whether name is present.
		Has(name types.ParamName) bool
	}
)

// Get returns the value for name and whether the key is present.
func (m Map) Get(name types.ParamName) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Has reports whether name is a key of the map.
func (m Map) Has(name types.ParamName) bool {
	_, ok := m[name]
	return ok
}

// Clone returns a shallow copy. Cloning a nil map yields an empty, non-nil map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns a new map holding m overlaid with each of others in order.
// Later values win on key conflicts. Neither m nor others is modified.
func (m Map) Merge(others ...Map) Map {
	size := len(m)
	for _, o := range others {
		size += len(o)
	}
	out := make(Map, size)
	for k, v := range m {
		out[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// Without returns a copy of m with the given names removed.
func (m Map) Without(names ...types.ParamName) Map {
	out := m.Clone()
	for _, name := range names {
		delete(out, name)
	}
	return out
}

// Names returns the keys of m in sorted order.
func (m Map) Names() []types.ParamName {
	names := make([]types.ParamName, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
