// SPDX-License-Identifier: MPL-2.0

package command

import (
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

const (
	// ProducerLiteral marks a producer holding a plain value.
	ProducerLiteral ProducerKind = "literal"
	// ProducerThunk marks a producer whose function runs once at declaration time.
	ProducerThunk ProducerKind = "thunk"
	// ProducerDerived marks a producer evaluated per construction from earlier bindings.
	ProducerDerived ProducerKind = "derived"
)

type (
	// ProducerKind names the variant held by a Producer.
	ProducerKind string

	// Producer supplies the default value of a dependency. Build one with
	// Literal, Thunk or Derived; the zero value is rejected by Dep.
	Producer struct {
		kind   ProducerKind
		value  any
		thunk  func() any
		derive func(params.Reader) (any, error)
	}
)

// Literal returns a producer that yields v as-is.
func Literal(v any) Producer {
	return Producer{kind: ProducerLiteral, value: v}
}

// Thunk returns a producer whose function is invoked exactly once, while the
// declaration block runs. Its result becomes the type-level default.
func Thunk(fn func() any) Producer {
	return Producer{kind: ProducerThunk, thunk: fn}
}

// Derived returns a producer evaluated at every construction that does not
// override the dependency. The reader exposes the merged inputs and every
// dependency resolved before this one.
func Derived(fn func(params.Reader) (any, error)) Producer {
	return Producer{kind: ProducerDerived, derive: fn}
}

// Kind returns the producer variant, or "" for the zero value.
func (p Producer) Kind() ProducerKind { return p.kind }

func (p Producer) valid() bool {
	switch p.kind {
	case ProducerLiteral:
		return true
	case ProducerThunk:
		return p.thunk != nil
	case ProducerDerived:
		return p.derive != nil
	default:
		return false
	}
}

// readOnly hides the concrete binding map from Derived producers.
type readOnly struct {
	m params.Map
}

func (r readOnly) Get(name types.ParamName) (any, bool) { return r.m.Get(name) }

func (r readOnly) Has(name types.ParamName) bool { return r.m.Has(name) }
