// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

// SetConfigHome points the platform's per-user configuration directory at
// dir and returns the base directory applications nest their own folder in.
// It uses t.Setenv, so callers must not run in parallel.
//
// Platform handling:
//   - Windows: sets APPDATA; base is dir
//   - macOS: sets HOME; base is dir/Library/Application Support
//   - others: sets XDG_CONFIG_HOME; base is dir
func SetConfigHome(t testing.TB, dir string) string {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
		return dir
	case "darwin":
		t.Setenv("HOME", dir)
		return filepath.Join(dir, "Library", "Application Support")
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
		return dir
	}
}
