// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/fang"

	"github.com/invowk/dais/pkg/types"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-06-15T10:00:00Z"

		want := "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)"
		if got := getVersionString(); got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestExitCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{"nil", nil, types.ExitSuccess},
		{"plain error", errors.New("x"), types.ExitFailure},
		{"incomplete", &ExitError{Code: types.ExitIncomplete}, types.ExitIncomplete},
		{"wrapped", fmt.Errorf("outer: %w", &ExitError{Code: types.ExitIncomplete}), types.ExitIncomplete},
		{"out of range", &ExitError{Code: 300}, types.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeOf(tt.err); got != tt.want {
				t.Errorf("exitCodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	if got := (&ExitError{Code: 2}).Error(); got != "exit status 2" {
		t.Errorf("Error() = %q", got)
	}
	inner := errors.New("inner")
	e := &ExitError{Code: 1, Err: inner}
	if e.Error() != "inner" || !errors.Is(e, inner) {
		t.Errorf("ExitError with Err = %q, Is(inner) = %v", e.Error(), errors.Is(e, inner))
	}
}

func TestHandleError_SkipsRenderedFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handleError(&buf, fang.Styles{}, &ExitError{Code: types.ExitIncomplete})
	if buf.Len() != 0 {
		t.Errorf("rendered failure printed again: %q", buf.String())
	}

	handleError(&buf, fang.Styles{}, errors.New(`unknown command "nope" for "dais"`))
	if !bytes.Contains(buf.Bytes(), []byte("unknown command")) {
		t.Errorf("usage error not printed: %q", buf.String())
	}
}

func TestNewRootCommand_Tree(t *testing.T) {
	t.Parallel()

	app, err := NewApp(Dependencies{})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	root := NewRootCommand(app)

	for _, path := range [][]string{
		{"list"}, {"describe"}, {"call"}, {"curry"},
		{"config", "show"}, {"config", "path"}, {"config", "dump"},
	} {
		if c, _, err := root.Find(path); err != nil || c.Name() != path[len(path)-1] {
			t.Errorf("command %v not found: %v", path, err)
		}
	}
	for _, flag := range []string{"config", "verbose", "log-level"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("global flag --%s missing", flag)
		}
	}
}
