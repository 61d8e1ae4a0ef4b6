// SPDX-License-Identifier: MPL-2.0

// Package params holds named parameter values for command units.
//
// A Map is the mutable, caller-facing form used to supply arguments. A Store
// is the immutable per-instance form created once at construction; it exposes
// read-only accessors and never changes afterwards. Reader is the minimal
// read view shared by both and handed to dependency producers.
//
// Typed lookups (Lookup, Int, Float, String) convert loosely typed values,
// such as integers decoded from TOML or CUE, into the Go types a compute step
// expects, reporting mismatches as *ParamTypeError.
package params
