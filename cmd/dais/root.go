// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the dais command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "dais",
		Short: "Curried command units",
		Long: TitleStyle.Render("dais") + SubtitleStyle.Render(" - curried command units") + `

dais runs command types that declare their required and optional
parameters once. A type can be called with everything at once, or
curried: parameters are applied step by step until the call completes.

` + SubtitleStyle.Render("Examples:") + `
  dais list                                   List command types
  dais describe math.chain                    Show parameters and dependencies
  dais call math.product one=3 two=5          Call with every parameter
  dais call --preset double one=3             Start from a configured preset
  dais curry math.product --step two=5 --step one=3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.openSession(cmd.Context(), *flags)
			if err != nil {
				fallback := defaultSession()
				fallback.verbose = flags.verbose
				return app.fail(fallback, err)
			}
			cmd.SetContext(contextWithSession(cmd.Context(), s))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/dais/config.cue)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	root.AddCommand(
		newListCommand(app),
		newDescribeCommand(app),
		newCallCommand(app),
		newCurryCommand(app),
		newConfigCommand(app),
	)
	return root
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App, runs the command tree through fang and exits with
// the resulting code. It is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
		os.Exit(int(exitCodeOf(err)))
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		os.Exit(int(exitCodeOf(err)))
	}
}

// handleError skips failures the command already rendered and defers the
// rest (usage errors, unknown commands) to fang.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
