// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/dais/internal/config"
)

// newConfigCommand creates the `dais config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect dais configuration",
		Long: `Inspect dais configuration.

Configuration is read from:
  - Linux: ~/.config/dais/config.cue
  - macOS: ~/Library/Application Support/dais/config.cue
  - Windows: %APPDATA%\dais\config.cue
  - ./config.cue when the file above does not exist

DAIS_LOG_LEVEL, DAIS_UI_COLOR_SCHEME and DAIS_UI_VERBOSE override it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			showConfig(app, sessionFromContext(cmd.Context()))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sessionFromContext(cmd.Context())
			if s.cfgPath != "" {
				fmt.Fprintln(app.stdout, s.cfgPath)
				return nil
			}
			dir := app.configDir
			if dir == "" {
				var err error
				if dir, err = config.ConfigDir(); err != nil {
					return app.fail(s, err)
				}
			}
			path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
			fmt.Fprintf(app.stdout, "%s %s\n", path, SubtitleStyle.Render("(not created)"))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(sessionFromContext(cmd.Context()).cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App, s *session) {
	out := app.stdout
	cfg := s.cfg

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if s.cfgPath != "" {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), s.cfgPath)
	} else {
		fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("log_level"), SuccessStyle.Render(cfg.LogLevel.String()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", CmdStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", CmdStyle.Render("presets"))
	if len(cfg.Presets) == 0 {
		fmt.Fprintf(out, "  %s\n", SubtitleStyle.Render("(none configured)"))
		return
	}
	for _, p := range cfg.Presets {
		fmt.Fprintf(out, "  - %s -> %s %s\n", SuccessStyle.Render(p.Name.String()), p.Command, formatParams(p.ParamMap()))
	}
}
