// SPDX-License-Identifier: MPL-2.0

// Package builtin declares the command types shipped with dais.
//
// The math types are small arithmetic units used to demonstrate optional
// defaults, dependency defaults and caller overrides. The text types expand
// shell-style parameter references ($name, ${name:-fallback}) against the
// bound parameters without running any command.
package builtin
