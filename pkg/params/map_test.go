// SPDX-License-Identifier: MPL-2.0

package params

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/invowk/dais/pkg/types"
)

func TestMap_Merge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		base   Map
		others []Map
		want   Map
	}{
		{
			name: "nil base",
			base: nil,
			want: Map{},
		},
		{
			name:   "later wins",
			base:   Map{"one": 1, "two": 2},
			others: []Map{{"two": 20}, {"two": 200, "three": 3}},
			want:   Map{"one": 1, "two": 200, "three": 3},
		},
		{
			name:   "present nil overrides",
			base:   Map{"two": 2},
			others: []Map{{"two": nil}},
			want:   Map{"two": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.base.Merge(tt.others...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_MergeDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := Map{"one": 1}
	other := Map{"one": 2, "two": 2}
	_ = base.Merge(other)

	if diff := cmp.Diff(Map{"one": 1}, base); diff != "" {
		t.Errorf("base mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Map{"one": 2, "two": 2}, other); diff != "" {
		t.Errorf("other mutated (-want +got):\n%s", diff)
	}
}

func TestMap_HasIsPresenceBased(t *testing.T) {
	t.Parallel()

	m := Map{"flag": nil, "zero": 0, "empty": ""}
	for _, name := range []types.ParamName{"flag", "zero", "empty"} {
		if !m.Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
	}
	if m.Has("absent") {
		t.Error("Has(absent) = true, want false")
	}
}

func TestMap_NamesAndWithout(t *testing.T) {
	t.Parallel()

	m := Map{"b": 1, "a": 2, "c": 3}
	if diff := cmp.Diff([]types.ParamName{"a", "b", "c"}, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Map{"b": 1}, m.Without("a", "c", "missing")); diff != "" {
		t.Errorf("Without() mismatch (-want +got):\n%s", diff)
	}
	if len(m) != 3 {
		t.Errorf("Without() mutated receiver: len = %d", len(m))
	}
}
