// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/parser"
)

// ErrNotStruct is returned by DecodeStruct when the document is not a struct.
var ErrNotStruct = errors.New("CUE document is not a struct")

// ParseAndDecode unifies data with the schema definition at schemaPath,
// validates it and decodes it into a T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*T, error) {
	o := applyOptions(opts)
	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()
	schemaValue := ctx.CompileBytes(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("internal error: compile schema: %w", err)
	}
	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, err)
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := userValue.Err(); err != nil {
		return nil, FormatError(err, o.filename)
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, o.filename)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return &out, nil
}

// DecodeStruct compiles a schema-less CUE document and returns its regular
// fields as plain Go values.
func DecodeStruct(data []byte, opts ...Option) (map[string]any, error) {
	o := applyOptions(opts)
	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	v := cuecontext.New().CompileBytes(data, cue.Filename(o.filename))
	if err := v.Err(); err != nil {
		return nil, FormatError(err, o.filename)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, o.filename)
	}
	if v.Kind() != cue.StructKind {
		return nil, fmt.Errorf("%s: %w", o.filename, ErrNotStruct)
	}

	out, err := ToGo(v)
	if err != nil {
		return nil, FormatError(err, o.filename)
	}
	return out.(map[string]any), nil
}

// ParseLiteral evaluates a single concrete CUE expression such as 42, 1.5,
// true, null, "text", [1, 2] or {a: 1}. References and non-concrete
// expressions are errors.
func ParseLiteral(src string) (any, error) {
	expr, err := parser.ParseExpr("literal", src)
	if err != nil {
		return nil, err
	}
	v := cuecontext.New().BuildExpr(expr)
	if err := v.Err(); err != nil {
		return nil, err
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}
	return ToGo(v)
}

// ToGo converts a concrete CUE value into Go values: int64, float64, string,
// bool, nil, []any and map[string]any. Bytes are returned as []byte.
func ToGo(v cue.Value) (any, error) {
	v, _ = v.Default()
	switch v.Kind() {
	case cue.NullKind:
		return nil, nil
	case cue.BoolKind:
		return v.Bool()
	case cue.IntKind:
		return v.Int64()
	case cue.FloatKind:
		return v.Float64()
	case cue.StringKind:
		return v.String()
	case cue.BytesKind:
		return v.Bytes()
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, err
		}
		out := []any{}
		for iter.Next() {
			elem, err := ToGo(iter.Value())
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		out := map[string]any{}
		for iter.Next() {
			field, err := ToGo(iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Selector().Unquoted()] = field
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value of kind %s is not concrete", v.Kind())
	}
}
