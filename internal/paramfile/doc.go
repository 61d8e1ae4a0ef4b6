// SPDX-License-Identifier: MPL-2.0

// Package paramfile turns command-line assignments and parameter files into
// params.Map values.
//
// Assignments have the form name=value. The value is read as a CUE literal
// (42, 1.5, true, null, "text", [1, 2], {a: 1}); anything that is not a
// concrete literal is kept as the raw string, so name=world binds "world".
//
// Files are read by extension: .toml with go-toml, .cue with CUE. Top-level
// keys must be valid parameter names.
package paramfile
