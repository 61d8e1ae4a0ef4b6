// SPDX-License-Identifier: MPL-2.0

package command

import (
	"slices"

	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

type (
	// Shape is the parameter shape of a command type: an ordered list of
	// distinct required names and a map of optional names to their defaults.
	// A name may appear in at most one of the two.
	Shape struct {
		Required []types.ParamName
		Optional params.Map
	}

	// declaration is the published, immutable state of a declared type.
	declaration struct {
		required []types.ParamName
		optional params.Map
		deps     []depSpec
	}
)

// compile validates the shape and returns a declaration owning copies of it.
func (s Shape) compile() (*declaration, error) {
	seen := make(map[types.ParamName]bool, len(s.Required))
	for _, name := range s.Required {
		if isValid, errs := name.IsValid(); !isValid {
			return nil, invalidDeclaration("required: %v", errs[0])
		}
		if seen[name] {
			return nil, invalidDeclaration("required name %q is listed twice", name)
		}
		seen[name] = true
	}
	for name := range s.Optional {
		if isValid, errs := name.IsValid(); !isValid {
			return nil, invalidDeclaration("optional: %v", errs[0])
		}
		if seen[name] {
			return nil, invalidDeclaration("name %q is both required and optional", name)
		}
	}
	return &declaration{
		required: slices.Clone(s.Required),
		optional: s.Optional.Clone(),
	}, nil
}

// isComplete reports whether every required name is a key of m. Values are
// not inspected and extra keys are ignored.
func (d *declaration) isComplete(m params.Map) bool {
	for _, name := range d.required {
		if !m.Has(name) {
			return false
		}
	}
	return true
}

// missing returns the required names absent from m, sorted.
func (d *declaration) missing(m params.Map) []types.ParamName {
	var out []types.ParamName
	for _, name := range d.required {
		if !m.Has(name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (d *declaration) dependencies() []Dependency {
	out := make([]Dependency, len(d.deps))
	for i, spec := range d.deps {
		out[i] = Dependency{Name: spec.name, Kind: spec.producer.kind, Default: spec.value}
	}
	return out
}
