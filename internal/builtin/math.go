// SPDX-License-Identifier: MPL-2.0

package builtin

import (
	"github.com/invowk/dais/pkg/command"
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

var (
	// Product multiplies one by two (default 2).
	Product = command.MustDefine("math.product", computeProduct,
		command.Shape{
			Required: []types.ParamName{"one"},
			Optional: params.Map{"two": int64(2)},
		},
		nil,
		command.WithDescription("Multiply one by two"),
	)

	// Scale returns 24*three*four, four defaulting to 4.
	Scale = command.MustDefine("math.scale", computeScale,
		command.Shape{
			Required: []types.ParamName{"three"},
			Optional: params.Map{"four": int64(4)},
		},
		nil,
		command.WithDescription("Scale three by 24 and four"),
	)

	// Chain forwards one to its dep_one dependency as three. dep_one
	// defaults to Scale and may be replaced by any callable.
	Chain = command.MustDefine("math.chain", computeChain,
		command.Shape{
			Required: []types.ParamName{"one"},
			Optional: params.Map{"two": int64(2)},
		},
		func(d *command.Declarer) error {
			return d.Dep("dep_one", command.Literal(Scale))
		},
		command.WithDescription("Forward one to dep_one as three"),
	)

	// SquareDep multiplies two dependencies, the second derived from the first.
	SquareDep = command.MustDefine("math.square_dep", computeSquareDep,
		command.Shape{
			Required: []types.ParamName{"one"},
			Optional: params.Map{"two": int64(2)},
		},
		func(d *command.Declarer) error {
			if err := d.Dep("dep_one", command.Literal(int64(2))); err != nil {
				return err
			}
			return d.Dep("dep_two", command.Derived(func(r params.Reader) (any, error) {
				v, _ := r.Get("dep_one")
				return v, nil
			}))
		},
		command.WithDescription("Multiply dep_one by dep_two and 2"),
	)
)

func computeProduct(in *command.Instance) (any, error) {
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

func computeScale(in *command.Instance) (any, error) {
	three, err := params.Int(in, "three")
	if err != nil {
		return nil, err
	}
	four, err := params.Int(in, "four")
	if err != nil {
		return nil, err
	}
	return in.Yield(24 * three * four)
}

func computeChain(in *command.Instance) (any, error) {
	v, err := in.Invoke("dep_one", params.Map{"three": in.Value("one")})
	if err != nil {
		return nil, err
	}
	return in.Yield(v)
}

func computeSquareDep(in *command.Instance) (any, error) {
	a, err := params.Int(in, "dep_one")
	if err != nil {
		return nil, err
	}
	b, err := params.Int(in, "dep_two")
	if err != nil {
		return nil, err
	}
	return in.Yield(a * b * 2)
}
