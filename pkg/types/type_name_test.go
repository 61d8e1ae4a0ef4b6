// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestTypeName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  TypeName
		valid bool
	}{
		{"product", true},
		{"math.product", true},
		{"text.expand_words", true},
		{"", false},
		{"math.", false},
		{".math", false},
		{"math..product", false},
		{"Math.product", false},
		{"math.2x", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.name.IsValid()
			if isValid != tt.valid {
				t.Fatalf("TypeName(%q).IsValid() = %v, want %v", tt.name, isValid, tt.valid)
			}
			if !tt.valid && !errors.Is(errs[0], ErrInvalidTypeName) {
				t.Errorf("error should wrap ErrInvalidTypeName, got: %v", errs[0])
			}
		})
	}
}

func TestTypeName_Namespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name TypeName
		want string
	}{
		{"product", ""},
		{"math.product", "math"},
		{"a.b.c", "a.b"},
	}

	for _, tt := range tests {
		if got := tt.name.Namespace(); got != tt.want {
			t.Errorf("TypeName(%q).Namespace() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
