// SPDX-License-Identifier: MPL-2.0

// Package invoke resolves CLI requests against a command catalog and runs
// them, either as a single call or as a chain of curry steps. Presets from
// the configuration are partial applications applied before the request's
// own parameters.
package invoke
