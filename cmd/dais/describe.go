// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/invowk/dais/internal/app/invoke"
	"github.com/invowk/dais/pkg/command"
	"github.com/invowk/dais/pkg/types"
)

func newDescribeCommand(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:               "describe <type>",
		Short:             "Show the parameters and dependencies of a command type",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTypes(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFromContext(cmd.Context())
			typ, err := app.resolveType(types.TypeName(args[0]))
			if err != nil {
				return app.fail(s, err)
			}

			md := describeMarkdown(typ)
			if raw {
				fmt.Fprint(app.stdout, md)
				return nil
			}
			rendered, err := glamour.Render(md, glamourStyle(s))
			if err != nil {
				return app.fail(s, fmt.Errorf("render description: %w", err))
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	return cmd
}

func (a *App) resolveType(name types.TypeName) (*command.Type, error) {
	if typ, ok := a.Catalog.Resolve(name); ok {
		return typ, nil
	}
	available := make([]types.TypeName, 0, a.Catalog.Len())
	for _, t := range a.Catalog.List() {
		available = append(available, t.Name())
	}
	return nil, &invoke.CommandNotFoundError{Name: name, Available: available}
}

// describeMarkdown documents typ as markdown: parameters, dependencies and a
// usage line.
func describeMarkdown(typ *command.Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", typ.Name())
	if desc := typ.Description(); desc != "" {
		fmt.Fprintf(&b, "%s\n\n", desc)
	}

	b.WriteString("## Parameters\n\n")
	b.WriteString("| Name | Kind | Default |\n|------|------|---------|\n")
	for _, name := range typ.Required() {
		fmt.Fprintf(&b, "| `%s` | required | |\n", name)
	}
	optional := typ.Optional()
	for _, name := range optional.Names() {
		fmt.Fprintf(&b, "| `%s` | optional | `%s` |\n", name, formatValue(optional[name]))
	}

	if deps := typ.Dependencies(); len(deps) > 0 {
		b.WriteString("\n## Dependencies\n\n")
		b.WriteString("| Name | Producer | Default |\n|------|----------|---------|\n")
		for _, d := range deps {
			def := "computed per call"
			if d.Kind != command.ProducerDerived {
				def = "`" + formatValue(d.Default) + "`"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", d.Name, d.Kind, def)
		}
	}

	b.WriteString("\n## Usage\n\n```sh\ndais call " + typ.Name().String())
	for _, name := range typ.Required() {
		fmt.Fprintf(&b, " %s=<value>", name)
	}
	b.WriteString("\n```\n")
	return b.String()
}

// completeTypes completes command type names.
func completeTypes(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var out []string
		for _, t := range app.Catalog.List() {
			if strings.HasPrefix(t.Name().String(), toComplete) {
				out = append(out, t.Name().String()+"\t"+t.Description().Summary())
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
