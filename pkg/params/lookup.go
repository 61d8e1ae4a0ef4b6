// SPDX-License-Identifier: MPL-2.0

package params

import (
	"errors"
	"fmt"
	"math"

	"github.com/invowk/dais/pkg/types"
)

var (
	// ErrUnknownParam is the sentinel error wrapped by UnknownParamError.
	ErrUnknownParam = errors.New("unknown param")
	// ErrParamType is the sentinel error wrapped by ParamTypeError.
	ErrParamType = errors.New("param type mismatch")
)

type (
	// UnknownParamError is returned when a lookup names a parameter that is
	// not bound.
	UnknownParamError struct {
		Name types.ParamName
	}

	// ParamTypeError is returned when a bound value cannot be converted to the
	// requested Go type.
	ParamTypeError struct {
		Name  types.ParamName
		Want  string
		Value any
	}
)

// Error implements the error interface for UnknownParamError.
func (e *UnknownParamError) Error() string {
	return fmt.Sprintf("param %q is not bound", e.Name)
}

// Unwrap returns ErrUnknownParam for errors.Is() compatibility.
func (e *UnknownParamError) Unwrap() error { return ErrUnknownParam }

// Error implements the error interface for ParamTypeError.
func (e *ParamTypeError) Error() string {
	return fmt.Sprintf("param %q: want %s, got %T (%v)", e.Name, e.Want, e.Value, e.Value)
}

// Unwrap returns ErrParamType for errors.Is() compatibility.
func (e *ParamTypeError) Unwrap() error { return ErrParamType }

// Lookup returns the value bound to name asserted to T.
func Lookup[T any](r Reader, name types.ParamName) (T, error) {
	var zero T
	v, ok := r.Get(name)
	if !ok {
		return zero, &UnknownParamError{Name: name}
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &ParamTypeError{Name: name, Want: fmt.Sprintf("%T", zero), Value: v}
	}
	return typed, nil
}

// Int returns the value bound to name as an int64. Every Go integer kind is
// accepted, as are floats holding an integral value.
func Int(r Reader, name types.ParamName) (int64, error) {
	v, ok := r.Get(name)
	if !ok {
		return 0, &UnknownParamError{Name: name}
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), nil
		}
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), nil
		}
	case float32:
		if f := float64(n); isIntegral(f) {
			return int64(f), nil
		}
	case float64:
		if isIntegral(n) {
			return int64(n), nil
		}
	}
	return 0, &ParamTypeError{Name: name, Want: "integer", Value: v}
}

// Float returns the value bound to name as a float64. Integers are widened.
func Float(r Reader, name types.ParamName) (float64, error) {
	v, ok := r.Get(name)
	if !ok {
		return 0, &UnknownParamError{Name: name}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	}
	i, err := Int(r, name)
	if err != nil {
		return 0, &ParamTypeError{Name: name, Want: "number", Value: v}
	}
	return float64(i), nil
}

// String returns the value bound to name as a string. Values implementing
// fmt.Stringer are rendered through String().
func String(r Reader, name types.ParamName) (string, error) {
	v, ok := r.Get(name)
	if !ok {
		return "", &UnknownParamError{Name: name}
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return "", &ParamTypeError{Name: name, Want: "string", Value: v}
}

// isIntegral reports whether f holds a whole number representable as int64.
func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}
