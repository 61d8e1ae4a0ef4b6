// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTypeName is the sentinel error wrapped by InvalidTypeNameError.
var ErrInvalidTypeName = errors.New("invalid type name")

type (
	// TypeName identifies a command type. It is a dot-separated sequence of
	// identifier segments (e.g., "math.product", "text.expand"). Each segment
	// follows the ParamName grammar.
	TypeName string

	// InvalidTypeNameError is returned when a TypeName is empty or has an
	// empty or malformed segment.
	InvalidTypeNameError struct {
		Value TypeName
	}
)

// String returns the string representation of the TypeName.
func (n TypeName) String() string { return string(n) }

// Namespace returns everything before the last dot, or "" for single-segment names.
func (n TypeName) Namespace() string {
	idx := strings.LastIndexByte(string(n), '.')
	if idx < 0 {
		return ""
	}
	return string(n[:idx])
}

// IsValid returns whether the TypeName is a non-empty dotted identifier.
func (n TypeName) IsValid() (bool, []error) {
	if n == "" {
		return false, []error{&InvalidTypeNameError{Value: n}}
	}
	for segment := range strings.SplitSeq(string(n), ".") {
		if !isIdentifier(segment) {
			return false, []error{&InvalidTypeNameError{Value: n}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidTypeNameError.
func (e *InvalidTypeNameError) Error() string {
	return fmt.Sprintf("invalid type name %q: expected dot-separated identifiers (e.g., math.product)", e.Value)
}

// Unwrap returns ErrInvalidTypeName for errors.Is() compatibility.
func (e *InvalidTypeNameError) Unwrap() error { return ErrInvalidTypeName }
