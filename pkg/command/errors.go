// SPDX-License-Identifier: MPL-2.0

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/dais/pkg/types"
)

var (
	// ErrAlreadyDeclared is returned when Declare runs a second time on a type.
	ErrAlreadyDeclared = errors.New("command type already declared")
	// ErrNotDeclared is returned when a type is used before Declare succeeded.
	ErrNotDeclared = errors.New("command type not declared")
	// ErrNoSuchOperation is returned when Dep is used outside a declaration block.
	ErrNoSuchOperation = errors.New("no such operation")
	// ErrInvalidDeclaration is returned for malformed parameter or dependency declarations.
	ErrInvalidDeclaration = errors.New("invalid declaration")
	// ErrTypeExists is returned when a catalog already holds a type with the same name.
	ErrTypeExists = errors.New("command type already registered")
	// ErrNilType is returned when a nil *Type is registered.
	ErrNilType = errors.New("command type is nil")
	// ErrMissingParams is the sentinel error wrapped by MissingParamsError.
	ErrMissingParams = errors.New("missing required params")
	// ErrCallbackIncomplete is the sentinel error wrapped by CallbackError.
	ErrCallbackIncomplete = errors.New("callback with incomplete params")
	// ErrNotCallable is the sentinel error wrapped by NotCallableError.
	ErrNotCallable = errors.New("value is not callable")
	// ErrDependency is the sentinel error wrapped by DependencyError.
	ErrDependency = errors.New("dependency resolution failed")
	// ErrCompute is the sentinel error wrapped by ComputeError.
	ErrCompute = errors.New("compute failed")
)

type (
	// ConfigError reports a declaration-time or registration-time misuse.
	// These errors are fatal for the operation and are never retried.
	ConfigError struct {
		// Type is the command type involved; empty when unknown.
		Type types.TypeName
		// Op is the operation that failed ("declare", "dep", "call", "register", ...).
		Op  string
		Err error
	}

	// MissingParamsError is returned when construction finds required names
	// that the caller did not supply. Missing is sorted and deduplicated.
	MissingParamsError struct {
		Type    types.TypeName
		Missing []types.ParamName
	}

	// CallbackError is returned when a callback is attached to a curry step
	// whose merged parameters are still incomplete.
	CallbackError struct {
		Type    types.TypeName
		Missing []types.ParamName
	}

	// DependencyError is returned when a Derived producer fails.
	DependencyError struct {
		Type types.TypeName
		Name types.ParamName
		Err  error
	}

	// ComputeError wraps an error returned by a type's compute step.
	ComputeError struct {
		Type types.TypeName
		Err  error
	}

	// NotCallableError is returned by Invoke for values it cannot call.
	NotCallableError struct {
		Value any
	}
)

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("command %s: %s: %v", e.Type, e.Op, e.Err)
}

// Unwrap returns the underlying sentinel or cause.
func (e *ConfigError) Unwrap() error { return e.Err }

// Error implements the error interface for MissingParamsError.
func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("command %s: missing keyword(s): %s", e.Type, joinNames(e.Missing))
}

// Unwrap returns ErrMissingParams for errors.Is() compatibility.
func (e *MissingParamsError) Unwrap() error { return ErrMissingParams }

// Error implements the error interface for CallbackError.
func (e *CallbackError) Error() string {
	return fmt.Sprintf("command %s: deferred calls with a pending callback and incomplete params are not supported (missing: %s)",
		e.Type, joinNames(e.Missing))
}

// Unwrap returns ErrCallbackIncomplete for errors.Is() compatibility.
func (e *CallbackError) Unwrap() error { return ErrCallbackIncomplete }

// Error implements the error interface for DependencyError.
func (e *DependencyError) Error() string {
	return fmt.Sprintf("command %s: resolve dependency %q: %v", e.Type, e.Name, e.Err)
}

// Unwrap returns both ErrDependency and the producer's error.
func (e *DependencyError) Unwrap() []error { return []error{ErrDependency, e.Err} }

// Error implements the error interface for ComputeError.
func (e *ComputeError) Error() string {
	return fmt.Sprintf("command %s: %v", e.Type, e.Err)
}

// Unwrap returns both ErrCompute and the compute step's error.
func (e *ComputeError) Unwrap() []error { return []error{ErrCompute, e.Err} }

// Error implements the error interface for NotCallableError.
func (e *NotCallableError) Error() string {
	return fmt.Sprintf("value of type %T is not callable", e.Value)
}

// Unwrap returns ErrNotCallable for errors.Is() compatibility.
func (e *NotCallableError) Unwrap() error { return ErrNotCallable }

func joinNames(names []types.ParamName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}

func invalidDeclaration(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDeclaration, fmt.Sprintf(format, args...))
}
