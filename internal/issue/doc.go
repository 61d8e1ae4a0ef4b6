// SPDX-License-Identifier: MPL-2.0

// Package issue holds the user-facing side of dais errors: ActionableError,
// which pairs a failure with the operation, the resource and concrete next
// steps, and a catalog of markdown help entries rendered with glamour.
package issue
