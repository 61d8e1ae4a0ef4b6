// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers for tests that fail fast on setup
// errors: writing fixture files, isolating the config home and capturing
// log output.
package testutil
