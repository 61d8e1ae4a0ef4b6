// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the dais command-line interface: listing and
// describing command types, calling them in one shot, and currying them
// step by step.
package cmd
