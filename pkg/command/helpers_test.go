// SPDX-License-Identifier: MPL-2.0

package command

import (
	"testing"

	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

// productCompute returns one*two.
func productCompute(in *Instance) (any, error) {
	one, err := params.Int(in, "one")
	if err != nil {
		return nil, err
	}
	two, err := params.Int(in, "two")
	if err != nil {
		return nil, err
	}
	return in.Yield(one * two)
}

// scaleCompute returns 24*three*four.
func scaleCompute(in *Instance) (any, error) {
	three, err := params.Int(in, "three")
	if err != nil {
		return nil, err
	}
	four, err := params.Int(in, "four")
	if err != nil {
		return nil, err
	}
	return 24 * three * four, nil
}

// chainCompute forwards one to dep_one as three.
func chainCompute(in *Instance) (any, error) {
	return in.Invoke("dep_one", params.Map{"three": in.Value("one")})
}

func newProduct(t *testing.T) *Type {
	t.Helper()
	typ, err := Define("test.product", productCompute,
		Shape{Required: []types.ParamName{"one"}, Optional: params.Map{"two": 2}}, nil)
	if err != nil {
		t.Fatalf("Define(test.product) error: %v", err)
	}
	return typ
}

func newScale(t *testing.T) *Type {
	t.Helper()
	typ, err := Define("test.scale", scaleCompute,
		Shape{Required: []types.ParamName{"three"}, Optional: params.Map{"four": 4}}, nil)
	if err != nil {
		t.Fatalf("Define(test.scale) error: %v", err)
	}
	return typ
}

// newChain declares a type whose dep_one defaults to dep.
func newChain(t *testing.T, dep any) *Type {
	t.Helper()
	typ, err := Define("test.chain", chainCompute,
		Shape{Required: []types.ParamName{"one"}, Optional: params.Map{"two": 2}},
		func(d *Declarer) error {
			return d.Dep("dep_one", Literal(dep))
		})
	if err != nil {
		t.Fatalf("Define(test.chain) error: %v", err)
	}
	return typ
}
