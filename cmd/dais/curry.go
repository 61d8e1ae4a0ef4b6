// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"

	"github.com/invowk/dais/internal/app/invoke"
	"github.com/invowk/dais/internal/paramfile"
	"github.com/invowk/dais/pkg/command"
	"github.com/invowk/dais/pkg/params"
)

func newCurryCommand(app *App) *cobra.Command {
	var (
		flags requestFlags
		steps []string
	)

	cmd := &cobra.Command{
		Use:   "curry [type] [name=value...] --step 'name=value ...'",
		Short: "Apply parameters step by step",
		Long: `Apply parameters step by step.

The preset, the parameter file and the name=value arguments form the
leading steps; every --step adds one more. Each step is split with shell
quoting rules. The partial state is printed after every step. A chain that
ends with required parameters missing exits with status 2.`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: completeTypes(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFromContext(cmd.Context())
			req, err := buildRequest(flags, args)
			if err != nil {
				return app.fail(s, err)
			}
			parsed, err := parseSteps(steps)
			if err != nil {
				return app.fail(s, err)
			}

			trace, err := app.service(s).Curry(cmd.Context(), req, parsed)
			printTrace(app, trace)
			if err != nil {
				return app.fail(s, err)
			}
			if !trace.Complete {
				return app.fail(s, &command.MissingParamsError{Type: trace.Type.Name(), Missing: trace.Partial.Missing()})
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "parameters applied as one curry step (repeatable)")
	cmd.Flags().StringVar(&flags.preset, "preset", "", "start from a preset defined in the config file")
	cmd.Flags().StringVarP(&flags.paramsFile, "params-file", "f", "", "read parameters from a .toml or .cue file")
	return cmd
}

// parseSteps turns each --step value into a parameter map. Variable
// references expand to nothing and command substitution is rejected.
func parseSteps(raw []string) ([]params.Map, error) {
	noEnv := func(string) string { return "" }
	out := make([]params.Map, 0, len(raw))
	for i, step := range raw {
		fields, err := shell.Fields(step, noEnv)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		m, err := paramfile.ParseAssignments(fields)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func printTrace(app *App, trace invoke.Trace) {
	for i, step := range trace.Steps {
		fmt.Fprintf(app.stdout, "%s %s\n", TitleStyle.Render(fmt.Sprintf("step %d:", i+1)), formatParams(step.Applied))
		if step.Complete {
			fmt.Fprintf(app.stdout, "  %s\n", SuccessStyle.Render("complete"))
			continue
		}
		fmt.Fprintf(app.stdout, "  %s %s\n", SubtitleStyle.Render("supplied:"), formatParams(step.Supplied))
		fmt.Fprintf(app.stdout, "  %s %s\n", WarningStyle.Render("missing:"), formatNames(step.Missing))
	}
	if trace.Complete {
		fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("result:"), formatValue(trace.Value))
	}
}
