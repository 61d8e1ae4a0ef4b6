// SPDX-License-Identifier: MPL-2.0

package command

import (
	"github.com/invowk/dais/pkg/params"
)

type (
	// Callable is anything a compute step can hand parameters to and get a
	// result back from. *Type, *Partial and CallableFunc implement it.
	Callable interface {
		Call(p params.Map) (any, error)
	}

	// CallableFunc adapts a plain function to Callable.
	CallableFunc func(p params.Map) (any, error)
)

// Call implements Callable.
func (f CallableFunc) Call(p params.Map) (any, error) { return f(p) }

// Invoke calls v with p. v may be a Callable or a func(params.Map) with
// either an (any, error) or a bare any result. Other values fail with
// *NotCallableError.
func Invoke(v any, p params.Map) (any, error) {
	switch fn := v.(type) {
	case Callable:
		return fn.Call(p)
	case func(params.Map) (any, error):
		return fn(p)
	case func(params.Map) any:
		return fn(p), nil
	default:
		return nil, &NotCallableError{Value: v}
	}
}
