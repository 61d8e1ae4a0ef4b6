// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/invowk/dais/pkg/command"
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

// formatValue renders a computed value or a dependency default for display.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case *command.Type:
		return "command " + x.Name().String()
	case *command.Partial:
		return fmt.Sprintf("partial %s (missing: %s)", x.Type().Name(), formatNames(x.Missing()))
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatParams renders m as sorted name=value pairs.
func formatParams(m params.Map) string {
	if len(m) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(m))
	for _, name := range m.Names() {
		parts = append(parts, fmt.Sprintf("%s=%s", name, formatValue(m[name])))
	}
	return strings.Join(parts, " ")
}

func formatNames(names []types.ParamName) string {
	if len(names) == 0 {
		return "-"
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return strings.Join(out, ", ")
}
