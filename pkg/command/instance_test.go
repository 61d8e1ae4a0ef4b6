// SPDX-License-Identifier: MPL-2.0

package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

func TestDependency_TypeDefault(t *testing.T) {
	t.Parallel()

	chain := newChain(t, newScale(t))
	got, err := chain.Call(params.Map{"one": 1})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if got != int64(96) {
		t.Errorf("Call({one: 1}) = %v, want 96", got)
	}
}

func TestDependency_CallerOverride(t *testing.T) {
	t.Parallel()

	chain := newChain(t, newScale(t))
	override := CallableFunc(func(p params.Map) (any, error) {
		three, err := params.Int(p, "three")
		return three * 100, err
	})

	got, err := chain.Call(params.Map{"one": 1, "dep_one": override})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if got != int64(100) {
		t.Errorf("Call({one: 1, dep_one: override}) = %v, want 100", got)
	}
}

func TestDependency_CurriedDefault(t *testing.T) {
	t.Parallel()

	scale := newScale(t)
	out, err := scale.Curry().Apply(params.Map{"four": 100})
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if out.Complete() {
		t.Fatal("Apply({four: 100}) completed without three")
	}

	chain := newChain(t, out.Partial())
	got, err := chain.Call(params.Map{"one": 1})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if got != int64(2400) {
		t.Errorf("Call({one: 1}) = %v, want 2400", got)
	}

	direct, err := scale.Call(params.Map{"three": 1, "four": 100})
	if err != nil {
		t.Fatalf("direct Call() error: %v", err)
	}
	if direct != got {
		t.Errorf("two-stage result %v differs from direct call %v", got, direct)
	}
}

func TestDependency_DerivedFromEarlierDep(t *testing.T) {
	t.Parallel()

	typ, err := Define("test.square_dep", func(in *Instance) (any, error) {
		a, err := params.Int(in, "dep_one")
		if err != nil {
			return nil, err
		}
		b, err := params.Int(in, "dep_two")
		if err != nil {
			return nil, err
		}
		return a * b * 2, nil
	}, Shape{Required: []types.ParamName{"one"}, Optional: params.Map{"two": 2}}, func(d *Declarer) error {
		if err := d.Dep("dep_one", Literal(2)); err != nil {
			return err
		}
		return d.Dep("dep_two", Derived(func(r params.Reader) (any, error) {
			v, _ := r.Get("dep_one")
			return v, nil
		}))
	})
	if err != nil {
		t.Fatalf("Define() error: %v", err)
	}

	tests := []struct {
		name string
		in   params.Map
		want int64
	}{
		{"defaults", params.Map{"one": 1}, 8},
		{"override feeds derived", params.Map{"one": 1, "dep_one": 3}, 18},
		{"override derived", params.Map{"one": 1, "dep_two": 5}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := typ.Call(tt.in)
			if err != nil {
				t.Fatalf("Call() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Call(%v) = %v, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDependency_DerivedFromInput(t *testing.T) {
	t.Parallel()

	typ, err := Define("test.from_input", func(in *Instance) (any, error) {
		return in.Value("doubled"), nil
	}, Shape{Required: []types.ParamName{"one"}}, func(d *Declarer) error {
		return d.Dep("doubled", Derived(func(r params.Reader) (any, error) {
			v, err := params.Int(r, "one")
			return v * 2, err
		}))
	})
	if err != nil {
		t.Fatalf("Define() error: %v", err)
	}

	got, err := typ.Call(params.Map{"one": 21})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if got != int64(42) {
		t.Errorf("Call({one: 21}) = %v, want 42", got)
	}
}

func TestDependency_DerivedError(t *testing.T) {
	t.Parallel()

	typ, err := Define("test.derived_err", func(*Instance) (any, error) { return "ran", nil },
		Shape{Required: []types.ParamName{"one"}}, func(d *Declarer) error {
			return d.Dep("n", Derived(func(r params.Reader) (any, error) {
				return params.Int(r, "one")
			}))
		})
	if err != nil {
		t.Fatalf("Define() error: %v", err)
	}

	_, err = typ.Call(params.Map{"one": "x"})
	var depErr *DependencyError
	if !errors.As(err, &depErr) || depErr.Name != "n" {
		t.Fatalf("Call() error = %v, want *DependencyError for n", err)
	}
	if !errors.Is(err, ErrDependency) || !errors.Is(err, params.ErrParamType) {
		t.Errorf("error %v does not wrap ErrDependency and ErrParamType", err)
	}

	_, err = typ.Call(nil)
	if !errors.Is(err, ErrMissingParams) {
		t.Errorf("Call(nil) error = %v, want ErrMissingParams", err)
	}
}

func TestDependency_NilOverride(t *testing.T) {
	t.Parallel()

	chain := newChain(t, newScale(t))
	in, err := chain.Build(params.Map{"one": 1, "dep_one": nil})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	v, ok := in.Get("dep_one")
	if !ok || v != nil {
		t.Errorf("dep_one = (%v, %v), want (nil, true)", v, ok)
	}
	if _, err := chain.Call(params.Map{"one": 1, "dep_one": nil}); !errors.Is(err, ErrNotCallable) {
		t.Errorf("Call() error = %v, want ErrNotCallable", err)
	}
}

func TestInstance_Deps(t *testing.T) {
	t.Parallel()

	scale := newScale(t)
	typ, err := Define("test.deps", productCompute,
		Shape{Required: []types.ParamName{"one"}, Optional: params.Map{"two": 2}},
		func(d *Declarer) error {
			if err := d.Dep("lit", Literal("value")); err != nil {
				return err
			}
			if err := d.Dep("callee", Literal(scale)); err != nil {
				return err
			}
			return d.Dep("sum", Derived(func(r params.Reader) (any, error) {
				one, err := params.Int(r, "one")
				if err != nil {
					return nil, err
				}
				two, err := params.Int(r, "two")
				return one + two, err
			}))
		})
	if err != nil {
		t.Fatalf("Define() error: %v", err)
	}

	in, err := typ.Build(params.Map{"one": 1, "lit": "over"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := params.Map{"lit": "over", "callee": scale, "sum": int64(3)}
	if diff := cmp.Diff(want, in.Deps(), cmp.Comparer(func(a, b *Type) bool { return a == b })); diff != "" {
		t.Errorf("Deps() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.ParamName{"callee", "lit", "one", "sum", "two"}, in.Params().Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if in.Type() != typ {
		t.Error("Instance.Type() does not return the owning type")
	}
}

func TestInstance_Expand(t *testing.T) {
	t.Parallel()

	in, err := newProduct(t).Build(params.Map{"one": 1})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got, err := in.Expand([]types.ParamName{"one", "two"}, params.Map{"three": 3})
	if err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	if diff := cmp.Diff(params.Map{"one": 1, "two": 2, "three": 3}, got); diff != "" {
		t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
	}

	if _, err := in.Expand([]types.ParamName{"nope"}, nil); !errors.Is(err, params.ErrUnknownParam) {
		t.Errorf("Expand(nope) error = %v, want ErrUnknownParam", err)
	}
	if _, err := in.Invoke("nope", nil); !errors.Is(err, params.ErrUnknownParam) {
		t.Errorf("Invoke(nope) error = %v, want ErrUnknownParam", err)
	}
}

func TestInstance_Yield(t *testing.T) {
	t.Parallel()

	in, err := newProduct(t).Build(params.Map{"one": 1})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if in.Callback() != nil {
		t.Error("Build() attached a callback")
	}
	if v, err := in.Yield(5); err != nil || v != 5 {
		t.Errorf("Yield(5) = %v, %v, want 5", v, err)
	}
}
