// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
)

// ErrInvalidParamName is the sentinel error wrapped by InvalidParamNameError.
var ErrInvalidParamName = errors.New("invalid param name")

type (
	// ParamName identifies a bound parameter: a regular input, an optional input
	// with a default, or a resolved dependency. Names start with a lowercase
	// letter or underscore and continue with lowercase letters, digits or
	// underscores (e.g., "one", "dep_one", "_scratch").
	ParamName string

	// InvalidParamNameError is returned when a ParamName does not match the
	// identifier grammar.
	InvalidParamNameError struct {
		Value ParamName
	}
)

// String returns the string representation of the ParamName.
func (n ParamName) String() string { return string(n) }

// IsValid returns whether the ParamName matches the identifier grammar.
// The zero value is invalid.
func (n ParamName) IsValid() (bool, []error) {
	if !isIdentifier(string(n)) {
		return false, []error{&InvalidParamNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidParamNameError.
func (e *InvalidParamNameError) Error() string {
	return fmt.Sprintf("invalid param name %q: must match [a-z_][a-z0-9_]*", e.Value)
}

// Unwrap returns ErrInvalidParamName for errors.Is() compatibility.
func (e *InvalidParamNameError) Unwrap() error { return ErrInvalidParamName }

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		if !(isLower || c == '_' || (isDigit && i > 0)) {
			return false
		}
	}
	return true
}
