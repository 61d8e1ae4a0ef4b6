// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/invowk/dais/pkg/types"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List command types",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listTypes(app)
		},
	}
}

func listTypes(app *App) error {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("TYPE", "REQUIRED", "OPTIONAL", "DEPS", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, typ := range app.Catalog.List() {
		deps := typ.Dependencies()
		depNames := make([]types.ParamName, len(deps))
		for i, d := range deps {
			depNames[i] = d.Name
		}
		t.Row(
			typ.Name().String(),
			formatNames(typ.Required()),
			formatNames(typ.Optional().Names()),
			formatNames(depNames),
			typ.Description().Summary(),
		)
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Command types"))
	fmt.Fprintln(app.stdout, t.Render())
	return nil
}
