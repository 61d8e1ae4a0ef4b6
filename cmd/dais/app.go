// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/invowk/dais/internal/app/invoke"
	"github.com/invowk/dais/internal/builtin"
	"github.com/invowk/dais/internal/config"
	"github.com/invowk/dais/pkg/command"
)

type (
	sessionContextKey struct{}

	// App wires CLI services and shared dependencies. Cobra handlers receive
	// an App and delegate to its services.
	App struct {
		Config  ConfigProvider
		Catalog *command.Catalog
		// configDir replaces the platform config directory; tests set it.
		configDir string
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config    ConfigProvider
		Catalog   *command.Catalog
		ConfigDir string
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// rootFlags holds the global flag values of one invocation.
	rootFlags struct {
		configPath string
		verbose    bool
		logLevel   string
	}

	// session is the per-invocation state resolved before any subcommand runs.
	session struct {
		cfg     *config.Config
		cfgPath string
		verbose bool
		logger  *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Catalog == nil {
		c, err := builtin.Catalog()
		if err != nil {
			return nil, fmt.Errorf("builtin catalog: %w", err)
		}
		deps.Catalog = c
	}

	return &App{
		Config:    deps.Config,
		Catalog:   deps.Catalog,
		configDir: deps.ConfigDir,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}, nil
}

func (a *App) loadOptions(flags rootFlags) config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: flags.configPath, ConfigDirPath: a.configDir}
}

// openSession loads configuration and builds the logger. An explicit --config
// that fails to load is fatal; a broken default config falls back to
// defaults with a warning.
func (a *App) openSession(ctx context.Context, flags rootFlags) (*session, error) {
	opts := a.loadOptions(flags)
	cfg, err := a.Config.Load(ctx, opts)
	if err != nil {
		if flags.configPath != "" {
			return nil, err
		}
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, flags.verbose))
		cfg = config.DefaultConfig()
	}
	path, _ := config.ResolvePath(opts)

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = config.LogLevel(flags.logLevel)
		if isValid, errs := level.IsValid(); !isValid {
			return nil, errs[0]
		}
	}
	lvl, err := log.ParseLevel(level.String())
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		cfgPath: path,
		verbose: flags.verbose || cfg.UI.Verbose,
		logger:  log.NewWithOptions(a.stderr, log.Options{Prefix: config.AppName, Level: lvl}),
	}, nil
}

// service returns an invoke.Service bound to the session's presets and logger.
func (a *App) service(s *session) *invoke.Service {
	return &invoke.Service{Catalog: a.Catalog, Presets: s.cfg, Logger: s.logger}
}

func contextWithSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// sessionFromContext returns the session attached by the root command, or a
// default one when a subcommand runs without it.
func sessionFromContext(ctx context.Context) *session {
	if s, ok := ctx.Value(sessionContextKey{}).(*session); ok {
		return s
	}
	return defaultSession()
}

func defaultSession() *session {
	return &session{cfg: config.DefaultConfig(), logger: log.New(io.Discard)}
}

func glamourStyle(s *session) string {
	switch s.cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
