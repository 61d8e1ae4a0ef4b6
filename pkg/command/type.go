// SPDX-License-Identifier: MPL-2.0

package command

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

type (
	// Compute is the step a concrete command type implements. It runs once
	// all parameters and dependencies are bound and reads them through the
	// instance accessors.
	Compute func(in *Instance) (any, error)

	// Callback is the optional trailing callback handed to a compute step.
	// Compute steps pass their result through it with Instance.Yield.
	Callback func(result any) (any, error)

	// Option configures a Type at creation.
	Option func(*Type)

	// Type is a command type. Create it with New, declare its shape once with
	// Declare, then use Call, CallWith, Curry or Build.
	Type struct {
		name        types.TypeName
		description types.DescriptionText
		compute     Compute

		mu   sync.Mutex
		decl atomic.Pointer[declaration]
	}
)

// WithDescription sets the human-readable description of the type.
func WithDescription(desc types.DescriptionText) Option {
	return func(t *Type) { t.description = desc }
}

// New creates an undeclared command type. The name and compute step are
// validated by Declare.
func New(name types.TypeName, compute Compute, opts ...Option) *Type {
	t := &Type{name: name, compute: compute}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Define creates and declares a type in one step.
func Define(name types.TypeName, compute Compute, shape Shape, block DeclBlock, opts ...Option) (*Type, error) {
	t := New(name, compute, opts...)
	if err := t.Declare(shape, block); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDefine is like Define but panics on error. It is meant for
// package-level declarations whose shape is fixed at compile time.
func MustDefine(name types.TypeName, compute Compute, shape Shape, block DeclBlock, opts ...Option) *Type {
	t, err := Define(name, compute, shape, block, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Declare installs the parameter shape and runs the declaration block.
// It succeeds at most once per type; later calls return a *ConfigError
// wrapping ErrAlreadyDeclared. When the block fails, the type stays
// undeclared.
func (t *Type) Declare(shape Shape, block DeclBlock) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.decl.Load() != nil {
		return &ConfigError{Type: t.name, Op: "declare", Err: ErrAlreadyDeclared}
	}
	if isValid, errs := t.name.IsValid(); !isValid {
		return &ConfigError{Type: t.name, Op: "declare", Err: invalidDeclaration("%v", errs[0])}
	}
	if isValid, errs := t.description.IsValid(); !isValid {
		return &ConfigError{Type: t.name, Op: "declare", Err: invalidDeclaration("%v", errs[0])}
	}
	if t.compute == nil {
		return &ConfigError{Type: t.name, Op: "declare", Err: invalidDeclaration("compute step is nil")}
	}

	decl, err := shape.compile()
	if err != nil {
		return &ConfigError{Type: t.name, Op: "declare", Err: err}
	}

	if block != nil {
		deps, err := runBlock(t.name, decl, block)
		if err != nil {
			return err
		}
		decl.deps = deps
	}

	t.decl.Store(decl)
	return nil
}

func runBlock(name types.TypeName, decl *declaration, block DeclBlock) ([]depSpec, error) {
	d := newDeclarer(name, decl)
	defer d.seal()

	if err := block(d); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &ConfigError{Type: name, Op: "declare", Err: err}
	}
	return d.deps, nil
}

// Name returns the type name.
func (t *Type) Name() types.TypeName { return t.name }

// Description returns the type description.
func (t *Type) Description() types.DescriptionText { return t.description }

// Declared reports whether Declare has succeeded.
func (t *Type) Declared() bool { return t.decl.Load() != nil }

// Required returns the required names in declaration order.
func (t *Type) Required() []types.ParamName {
	if decl := t.decl.Load(); decl != nil {
		return slices.Clone(decl.required)
	}
	return nil
}

// Optional returns a copy of the optional defaults.
func (t *Type) Optional() params.Map {
	if decl := t.decl.Load(); decl != nil {
		return decl.optional.Clone()
	}
	return nil
}

// Dependencies returns the declared dependencies in declaration order.
func (t *Type) Dependencies() []Dependency {
	if decl := t.decl.Load(); decl != nil {
		return decl.dependencies()
	}
	return nil
}

// IsComplete reports whether m, merged over the optional defaults, holds
// every required name. It is false for undeclared types.
func (t *Type) IsComplete(m params.Map) bool {
	decl := t.decl.Load()
	if decl == nil {
		return false
	}
	return decl.isComplete(decl.optional.Merge(m))
}

// Call invokes the type once with p. It never returns a partial: missing
// required names fail construction with *MissingParamsError.
func (t *Type) Call(p params.Map) (any, error) {
	return t.CallWith(p, nil)
}

// CallWith is Call with a trailing callback handed to the compute step.
func (t *Type) CallWith(p params.Map, cb Callback) (any, error) {
	decl, err := t.declared("call")
	if err != nil {
		return nil, err
	}
	in, err := t.construct(decl, p.Clone(), cb)
	if err != nil {
		return nil, err
	}
	return t.run(in)
}

// Build constructs an instance from p without running the compute step.
// It applies the same defaults, dependency resolution and required-name
// check as Call.
func (t *Type) Build(p params.Map) (*Instance, error) {
	decl, err := t.declared("build")
	if err != nil {
		return nil, err
	}
	return t.construct(decl, p.Clone(), nil)
}

// Curry returns an empty partial application of the type.
func (t *Type) Curry() *Partial {
	return &Partial{typ: t, supplied: params.Map{}}
}

func (t *Type) declared(op string) (*declaration, error) {
	decl := t.decl.Load()
	if decl == nil {
		return nil, &ConfigError{Type: t.name, Op: op, Err: ErrNotDeclared}
	}
	return decl, nil
}

func (t *Type) run(in *Instance) (any, error) {
	v, err := t.compute(in)
	if err != nil {
		return nil, &ComputeError{Type: t.name, Err: err}
	}
	return v, nil
}

// references returns the types named by dependency defaults: literal or
// thunk values that are a *Type or a *Partial.
func (t *Type) references() []*Type {
	decl := t.decl.Load()
	if decl == nil {
		return nil
	}
	var refs []*Type
	for _, spec := range decl.deps {
		switch v := spec.value.(type) {
		case *Type:
			refs = append(refs, v)
		case *Partial:
			refs = append(refs, v.typ)
		}
	}
	return refs
}
