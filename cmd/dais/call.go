// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/dais/internal/app/invoke"
	"github.com/invowk/dais/internal/config"
	"github.com/invowk/dais/internal/paramfile"
	"github.com/invowk/dais/pkg/params"
	"github.com/invowk/dais/pkg/types"
)

type requestFlags struct {
	preset     string
	paramsFile string
}

func newCallCommand(app *App) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "call [type] [name=value...]",
		Short: "Call a command type with every parameter at once",
		Long: `Call a command type with every parameter at once.

Values are CUE literals (42, 1.5, true, null, "text", [1, 2], {a: 1});
anything else is taken as a plain string. Parameters from --params-file
are applied first, then name=value arguments. With --preset the type may
be omitted.`,
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: completeTypes(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFromContext(cmd.Context())
			req, err := buildRequest(flags, args)
			if err != nil {
				return app.fail(s, err)
			}

			res, err := app.service(s).Call(cmd.Context(), req)
			if err != nil {
				return app.fail(s, err)
			}
			fmt.Fprintln(app.stdout, formatValue(res.Value))
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.preset, "preset", "", "start from a preset defined in the config file")
	cmd.Flags().StringVarP(&flags.paramsFile, "params-file", "f", "", "read parameters from a .toml or .cue file")
	return cmd
}

// buildRequest splits args into an optional leading type name and
// name=value assignments, layered over the parameter file.
func buildRequest(flags requestFlags, args []string) (invoke.Request, error) {
	req := invoke.Request{Preset: config.PresetName(flags.preset)}
	if len(args) > 0 && !strings.Contains(args[0], "=") {
		req.Command = types.TypeName(args[0])
		args = args[1:]
	}

	base := params.Map{}
	if flags.paramsFile != "" {
		loaded, err := paramfile.Load(flags.paramsFile)
		if err != nil {
			return invoke.Request{}, err
		}
		base = loaded
	}
	assigned, err := paramfile.ParseAssignments(args)
	if err != nil {
		return invoke.Request{}, err
	}
	req.Params = base.Merge(assigned)
	return req, nil
}
