// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	if FormatError(nil, "x.cue") != nil {
		t.Error("FormatError(nil) != nil")
	}

	plain := errors.New("some error")
	err := FormatError(plain, "x.cue")
	if !errors.Is(err, plain) {
		t.Errorf("FormatError() does not wrap a non-CUE error: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "x.cue: ") {
		t.Errorf("FormatError() = %q, want x.cue prefix", err.Error())
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"log_level"}, "log_level"},
		{[]string{"ui", "color_scheme"}, "ui.color_scheme"},
		{[]string{"presets", "0", "command"}, "presets[0].command"},
		{[]string{"0"}, "0"},
		{[]string{"a", "1", "2"}, "a[1][2]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("CheckFileSize() at the limit error: %v", err)
	}
	err := CheckFileSize(make([]byte, 11), 10, "f")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("CheckFileSize() error = %v, want ErrFileTooLarge", err)
	}
	if !strings.Contains(err.Error(), "11 bytes exceeds maximum 10 bytes") {
		t.Errorf("CheckFileSize() error = %q", err.Error())
	}
}
