// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testSchema = `
#Preset: {
	name:    string & =~"^[a-z]"
	command: string
	params?: {...}
}
`

type testPreset struct {
	Name    string         `json:"name"`
	Command string         `json:"command"`
	Params  map[string]any `json:"params,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		opts    []Option
		want    *testPreset
		wantErr string
	}{
		{
			name: "valid document",
			data: `name: "double", command: "math.product", params: {two: 2}`,
			want: &testPreset{Name: "double", Command: "math.product", Params: map[string]any{"two": int64(2)}},
		},
		{
			name: "optional field omitted",
			data: `name: "bare", command: "math.scale"`,
			want: &testPreset{Name: "bare", Command: "math.scale"},
		},
		{
			name:    "schema violation names the path",
			data:    `name: "Upper", command: "math.scale"`,
			opts:    []Option{WithFilename("presets.cue")},
			wantErr: "presets.cue: name",
		},
		{
			name:    "wrong type",
			data:    `name: "x", command: 3`,
			wantErr: "command",
		},
		{
			name:    "syntax error",
			data:    `name: "x", command:`,
			wantErr: "<input>",
		},
		{
			name:    "size cap",
			data:    strings.Repeat(" ", 64),
			opts:    []Option{WithMaxFileSize(16)},
			wantErr: "exceeds maximum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAndDecode[testPreset]([]byte(testSchema), []byte(tt.data), "#Preset", tt.opts...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseAndDecode() error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAndDecode() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseAndDecode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAndDecode_NonConcrete(t *testing.T) {
	t.Parallel()

	data := []byte(`name: string, command: "math.product"`)
	if _, err := ParseAndDecode[testPreset]([]byte(testSchema), data, "#Preset"); err == nil {
		t.Error("ParseAndDecode() accepted a non-concrete field")
	}
}

func TestParseAndDecode_UnknownDefinition(t *testing.T) {
	t.Parallel()

	_, err := ParseAndDecode[testPreset]([]byte(testSchema), []byte(`name: "x"`), "#Missing")
	if err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Errorf("ParseAndDecode() error = %v, want internal error", err)
	}
}

func TestDecodeStruct(t *testing.T) {
	t.Parallel()

	data := []byte(`
one:  1
two:  2.5
name: "dais"
on:   true
none: null
list: [1, "a"]
nested: {x: 1}
#hidden: 1
`)
	got, err := DecodeStruct(data, WithFilename("params.cue"))
	if err != nil {
		t.Fatalf("DecodeStruct() error: %v", err)
	}
	want := map[string]any{
		"one":    int64(1),
		"two":    2.5,
		"name":   "dais",
		"on":     true,
		"none":   nil,
		"list":   []any{int64(1), "a"},
		"nested": map[string]any{"x": int64(1)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeStruct() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeStruct_Errors(t *testing.T) {
	t.Parallel()

	if _, err := DecodeStruct([]byte(`[1, 2]`)); !errors.Is(err, ErrNotStruct) {
		t.Errorf("DecodeStruct(list) error = %v, want ErrNotStruct", err)
	}
	if _, err := DecodeStruct([]byte(`a: int`)); err == nil {
		t.Error("DecodeStruct() accepted a non-concrete field")
	}
	if _, err := DecodeStruct([]byte(`a: 1`), WithMaxFileSize(2)); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("DecodeStruct() error = %v, want ErrFileTooLarge", err)
	}
}

func TestParseLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src     string
		want    any
		wantErr bool
	}{
		{src: "42", want: int64(42)},
		{src: "-3", want: int64(-3)},
		{src: "1.5", want: 1.5},
		{src: "true", want: true},
		{src: "null", want: nil},
		{src: `"quoted text"`, want: "quoted text"},
		{src: "[1, 2]", want: []any{int64(1), int64(2)}},
		{src: "{a: 1}", want: map[string]any{"a": int64(1)}},
		{src: "hello", wantErr: true},
		{src: "int", wantErr: true},
		{src: "hello world", wantErr: true},
		{src: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLiteral(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLiteral(%q) = %v, want error", tt.src, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLiteral(%q) error: %v", tt.src, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLiteral(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}
