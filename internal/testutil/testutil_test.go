// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := MustWriteFile(t, dir, filepath.Join("nested", "f.txt"), "content")

	if path != filepath.Join(dir, "nested", "f.txt") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "content" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
}

// Not parallel: t.Setenv.
func TestSetConfigHome(t *testing.T) {
	dir := t.TempDir()
	base := SetConfigHome(t, dir)

	switch runtime.GOOS {
	case "windows":
		if os.Getenv("APPDATA") != dir || base != dir {
			t.Errorf("APPDATA = %q, base = %q", os.Getenv("APPDATA"), base)
		}
	case "darwin":
		if os.Getenv("HOME") != dir || !strings.HasPrefix(base, dir) {
			t.Errorf("HOME = %q, base = %q", os.Getenv("HOME"), base)
		}
	default:
		if os.Getenv("XDG_CONFIG_HOME") != dir || base != dir {
			t.Errorf("XDG_CONFIG_HOME = %q, base = %q", os.Getenv("XDG_CONFIG_HOME"), base)
		}
	}
}

func TestNewDebugLogger(t *testing.T) {
	t.Parallel()

	logger, buf := NewDebugLogger()
	logger.Debug("step", "n", 1)
	if !strings.Contains(buf.String(), "step") || !strings.Contains(buf.String(), "n=1") {
		t.Errorf("log output = %q", buf.String())
	}
}
