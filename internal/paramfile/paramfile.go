// SPDX-License-Identifier: MPL-2.0

package paramfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/invowk/dais/internal/cueutil"
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

// MaxFileSize caps the size of a parameter file.
const MaxFileSize = cueutil.DefaultMaxFileSize

var (
	// ErrInvalidAssignment is returned for assignments that are not name=value.
	ErrInvalidAssignment = errors.New("invalid assignment")
	// ErrUnsupportedFormat is returned for parameter files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported parameter file format")
)

// ParseAssignments parses name=value pairs. Later assignments to the same
// name win.
func ParseAssignments(args []string) (params.Map, error) {
	out := make(params.Map, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w %q: expected name=value", ErrInvalidAssignment, arg)
		}
		pn := types.ParamName(strings.TrimSpace(name))
		if isValid, errs := pn.IsValid(); !isValid {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidAssignment, arg, errs[0])
		}
		out[pn] = parseValue(raw)
	}
	return out, nil
}

func parseValue(raw string) any {
	if v, err := cueutil.ParseLiteral(raw); err == nil {
		return v
	}
	return raw
}

// Load reads a parameter file.
func Load(path string) (params.Map, error) {
	format := strings.ToLower(filepath.Ext(path))
	if format != ".toml" && format != ".cue" {
		return nil, fmt.Errorf("%s: %w %q (want .toml or .cue)", path, ErrUnsupportedFormat, format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read parameter file: %w", err)
	}
	return Parse(data, format, path)
}

// Parse decodes data in the given format (".toml" or ".cue"). name is used
// in error messages.
func Parse(data []byte, format, name string) (params.Map, error) {
	var raw map[string]any
	switch format {
	case ".toml":
		if err := cueutil.CheckFileSize(data, MaxFileSize, name); err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	case ".cue":
		var err error
		raw, err = cueutil.DecodeStruct(data, cueutil.WithFilename(name), cueutil.WithMaxFileSize(MaxFileSize))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnsupportedFormat, format)
	}
	return toMap(raw, name)
}

func toMap(raw map[string]any, name string) (params.Map, error) {
	out := make(params.Map, len(raw))
	for k, v := range raw {
		pn := types.ParamName(k)
		if isValid, errs := pn.IsValid(); !isValid {
			return nil, fmt.Errorf("%s: %w", name, errs[0])
		}
		out[pn] = v
	}
	return out, nil
}
