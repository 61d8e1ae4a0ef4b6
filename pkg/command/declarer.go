// SPDX-License-Identifier: MPL-2.0

package command

import (
	"github.com/invowk/dais/pkg/types"
)

type (
	// DeclBlock is the declaration block passed to Declare. It runs exactly
	// once, while the type is being declared, and may call Dep any number of
	// times. Returning an error aborts the declaration.
	DeclBlock func(d *Declarer) error

	// Declarer is the context handed to a DeclBlock. It is sealed as soon as
	// the block returns; Dep calls after that fail with ErrNoSuchOperation.
	Declarer struct {
		typ      types.TypeName
		reserved map[types.ParamName]string
		deps     []depSpec
		sealed   bool
	}

	// depSpec is one declared dependency. Literal and Thunk producers are
	// resolved when declared; Derived producers resolve per construction.
	depSpec struct {
		name     types.ParamName
		producer Producer
		resolved bool
		value    any
	}

	// Dependency describes a declared dependency for introspection.
	Dependency struct {
		Name types.ParamName
		Kind ProducerKind
		// Default is the type-level default; nil for Derived producers.
		Default any
	}
)

func newDeclarer(typ types.TypeName, decl *declaration) *Declarer {
	reserved := make(map[types.ParamName]string, len(decl.required)+len(decl.optional))
	for _, name := range decl.required {
		reserved[name] = "required"
	}
	for name := range decl.optional {
		reserved[name] = "optional"
	}
	return &Declarer{typ: typ, reserved: reserved}
}

// Type returns the name of the type being declared.
func (d *Declarer) Type() types.TypeName {
	if d == nil {
		return ""
	}
	return d.typ
}

// Dep declares a dependency named name with the given default producer.
// Thunks are invoked immediately. Names must be valid and must not collide
// with a required, optional or previously declared dependency name.
func (d *Declarer) Dep(name types.ParamName, p Producer) error {
	if d == nil || d.sealed {
		return &ConfigError{Type: d.Type(), Op: "dep", Err: ErrNoSuchOperation}
	}
	if isValid, errs := name.IsValid(); !isValid {
		return &ConfigError{Type: d.typ, Op: "dep", Err: invalidDeclaration("%v", errs[0])}
	}
	if kind, taken := d.reserved[name]; taken {
		return &ConfigError{Type: d.typ, Op: "dep", Err: invalidDeclaration("dependency %q is already declared as %s", name, kind)}
	}
	if !p.valid() {
		return &ConfigError{Type: d.typ, Op: "dep", Err: invalidDeclaration("dependency %q has no producer", name)}
	}

	spec := depSpec{name: name, producer: p}
	switch p.kind {
	case ProducerLiteral:
		spec.resolved, spec.value = true, p.value
	case ProducerThunk:
		spec.resolved, spec.value = true, p.thunk()
	}
	d.reserved[name] = "dependency"
	d.deps = append(d.deps, spec)
	return nil
}

func (d *Declarer) seal() { d.sealed = true }
