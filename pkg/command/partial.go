// SPDX-License-Identifier: MPL-2.0

package command

import (
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

type (
	// Partial is an immutable partial application of a command type. Each
	// Apply merges more parameters over the accumulated ones and either
	// completes the call or yields a new Partial. The accumulated map is never
	// modified, so a Partial may be shared and completed any number of times.
	Partial struct {
		typ      *Type
		supplied params.Map
	}

	// Outcome is the result of one application step: either a computed value
	// or the next Partial.
	Outcome struct {
		value    any
		partial  *Partial
		complete bool
	}
)

// Complete reports whether the step ran the compute step.
func (o Outcome) Complete() bool { return o.complete }

// Value returns the computed value; nil while incomplete.
func (o Outcome) Value() any { return o.value }

// Partial returns the next partial application; nil once complete.
func (o Outcome) Partial() *Partial { return o.partial }

// Type returns the command type being applied.
func (p *Partial) Type() *Type { return p.typ }

// Supplied returns a copy of the parameters accumulated so far.
func (p *Partial) Supplied() params.Map { return p.supplied.Clone() }

// Missing returns the required names not yet supplied, sorted.
func (p *Partial) Missing() []types.ParamName {
	decl := p.typ.decl.Load()
	if decl == nil {
		return nil
	}
	return decl.missing(p.supplied)
}

// Apply merges more over the accumulated parameters. Later values win.
func (p *Partial) Apply(more params.Map) (Outcome, error) {
	return p.ApplyWith(more, nil)
}

// ApplyWith is Apply with a trailing callback. Attaching a callback to a step
// that is still incomplete fails with *CallbackError.
func (p *Partial) ApplyWith(more params.Map, cb Callback) (Outcome, error) {
	decl, err := p.typ.declared("curry")
	if err != nil {
		return Outcome{}, err
	}

	supplied := p.supplied.Merge(more)
	if !decl.isComplete(decl.optional.Merge(supplied)) {
		if cb != nil {
			return Outcome{}, &CallbackError{Type: p.typ.name, Missing: decl.missing(supplied)}
		}
		return Outcome{partial: &Partial{typ: p.typ, supplied: supplied}}, nil
	}

	in, err := p.typ.construct(decl, supplied, cb)
	if err != nil {
		return Outcome{}, err
	}
	v, err := p.typ.run(in)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{value: v, complete: true}, nil
}

// Call applies more and returns the computed value, or the next *Partial
// while parameters are still missing.
func (p *Partial) Call(more params.Map) (any, error) {
	out, err := p.Apply(more)
	if err != nil {
		return nil, err
	}
	if !out.Complete() {
		return out.Partial(), nil
	}
	return out.Value(), nil
}
