// SPDX-License-Identifier: MPL-2.0

// Package cueutil holds the CUE plumbing shared by the config loader and the
// parameter file reader.
//
// Schema-backed documents go through ParseAndDecode: the embedded schema is
// compiled, the user data is compiled and unified with the named definition,
// and the result is validated and decoded into a Go struct. Untyped documents
// and single literals are compiled without a schema and converted into plain
// Go values by ToGo.
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	cfg, err := cueutil.ParseAndDecode[Config](schema, data, "#Config",
//	    cueutil.WithFilename("config.cue"))
package cueutil
