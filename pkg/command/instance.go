// SPDX-License-Identifier: MPL-2.0

package command

import (
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

// Instance is one constructed command: the type it belongs to, its bound
// parameters and the callback handed to this invocation. Instances are
// read-only and only ever reach a compute step fully bound.
type Instance struct {
	typ      *Type
	store    *params.Store
	deps     []types.ParamName
	callback Callback
}

// construct binds supplied over the optional defaults, resolves every
// dependency in declaration order and checks the required names against
// what the caller actually supplied.
func (t *Type) construct(decl *declaration, supplied params.Map, cb Callback) (*Instance, error) {
	missing := decl.missing(supplied)
	bindings := decl.optional.Merge(supplied)

	deps := make([]types.ParamName, 0, len(decl.deps))
	for _, spec := range decl.deps {
		deps = append(deps, spec.name)
		if v, ok := supplied.Get(spec.name); ok {
			bindings[spec.name] = v
			continue
		}
		if spec.resolved {
			bindings[spec.name] = spec.value
			continue
		}
		v, err := spec.producer.derive(readOnly{m: bindings})
		if err != nil {
			if len(missing) > 0 {
				return nil, &MissingParamsError{Type: t.name, Missing: missing}
			}
			return nil, &DependencyError{Type: t.name, Name: spec.name, Err: err}
		}
		bindings[spec.name] = v
	}

	if len(missing) > 0 {
		return nil, &MissingParamsError{Type: t.name, Missing: missing}
	}
	return &Instance{typ: t, store: params.NewStore(bindings), deps: deps, callback: cb}, nil
}

// Type returns the command type the instance was built from.
func (in *Instance) Type() *Type { return in.typ }

// Get returns the value bound to name and whether it is present.
func (in *Instance) Get(name types.ParamName) (any, bool) { return in.store.Get(name) }

// Has reports whether name is bound.
func (in *Instance) Has(name types.ParamName) bool { return in.store.Has(name) }

// Value returns the value bound to name, or nil.
func (in *Instance) Value(name types.ParamName) any { return in.store.Value(name) }

// Params returns the instance's parameter store.
func (in *Instance) Params() *params.Store { return in.store }

// Expand collects the named bindings and overlays extra.
// See params.Store.Expand.
func (in *Instance) Expand(names []types.ParamName, extra params.Map) (params.Map, error) {
	return in.store.Expand(names, extra)
}

// Deps returns the resolved value of every declared dependency.
func (in *Instance) Deps() params.Map {
	out := make(params.Map, len(in.deps))
	for _, name := range in.deps {
		out[name] = in.store.Value(name)
	}
	return out
}

// Callback returns the callback handed to this invocation, or nil.
func (in *Instance) Callback() Callback { return in.callback }

// Yield passes v through the callback when one was given and returns v
// unchanged otherwise.
func (in *Instance) Yield(v any) (any, error) {
	if in.callback == nil {
		return v, nil
	}
	return in.callback(v)
}

// Invoke calls the value bound to name with p. It is shorthand for
// Invoke(in.Value(name), p) that reports an unbound name.
func (in *Instance) Invoke(name types.ParamName, p params.Map) (any, error) {
	v, ok := in.store.Get(name)
	if !ok {
		return nil, &params.UnknownParamError{Name: name}
	}
	return Invoke(v, p)
}
