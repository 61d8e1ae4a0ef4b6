// SPDX-License-Identifier: MPL-2.0

// Package command builds curried command units.
//
// A command type is a single-purpose callable that declares, exactly once, a
// fixed set of named parameters: required names and optional names with
// defaults. It may also declare dependencies on other command units. Callers
// then either invoke it immediately with Call, or apply parameters step by step
// through Curry until every required name is known.
//
//	product := command.MustDefine("math.product",
//		func(in *command.Instance) (any, error) {
//			one, err := params.Int(in, "one")
//			if err != nil {
//				return nil, err
//			}
//			two, err := params.Int(in, "two")
//			if err != nil {
//				return nil, err
//			}
//			return one * two, nil
//		},
//		command.Shape{Required: []types.ParamName{"one"}, Optional: params.Map{"two": 2}},
//		nil,
//	)
//
//	v, err := product.Call(params.Map{"one": 1})            // 2
//	o, err := product.Curry().Apply(params.Map{"two": 5})    // o.Partial() awaits "one"
//	o, err = o.Partial().Apply(params.Map{"one": 3})         // o.Value() == 15
//
// Dependencies are declared inside the block passed to Declare (or Define).
// Literal and Thunk producers are evaluated once, when the block runs, and
// become the type-level default. Derived producers run per construction, in
// declaration order, and read the inputs and previously resolved
// dependencies. A value supplied by the caller under a dependency's name
// always replaces the default.
//
// Required names are satisfied only by caller-supplied arguments; optional
// defaults never count. A missing name fails construction with
// *MissingParamsError before any compute step runs.
//
// Declaration is serialized per type; after Declare returns, a *Type is
// read-only and safe for concurrent use. A *Partial never mutates its captured
// parameters, so it can be shared and completed any number of times.
package command
