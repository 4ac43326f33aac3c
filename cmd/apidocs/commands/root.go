// Package commands provides the cobra commands of the apidocs CLI.
package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/colossus-credit/docs/internal/config"
	"github.com/colossus-credit/docs/logging"
)

type rootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	LogFile    string
}

type appState struct {
	opts rootOptions
	cfg  *config.Config
	log  logging.Logger
	zap  *logging.ZapAdapter
}

type appKey struct{}

func (a *appState) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.opts.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.opts.LogFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.opts.LogFile
	}

	z, err := logging.NewZap(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.zap = z
	a.log = z.With("command", cmd.Name())
	return nil
}

func appFrom(cmd *cobra.Command) (*appState, error) {
	a, ok := cmd.Context().Value(appKey{}).(*appState)
	if !ok {
		return nil, errors.New("internal error: app state missing from command context")
	}
	return a, nil
}

// NewRootCmd builds the apidocs command tree.
func NewRootCmd() *cobra.Command {
	app := &appState{}

	root := &cobra.Command{
		Use:   "apidocs",
		Short: "Generate and serve OpenAPI reference documentation",
		Long: "apidocs turns an OpenAPI document into reference documentation pages.\n\n" +
			"Settings come from apidocs.yaml (or --config), then APIDOCS_* environment\n" +
			"variables, then command-line flags.\n\n" +
			"Examples:\n" +
			"  apidocs generate\n" +
			"  apidocs generate --source api/openapi.yaml --no-schemas\n" +
			"  apidocs validate openapi.yaml\n" +
			"  apidocs serve --addr :8080\n",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.init(cmd); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey{}, app))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.zap != nil {
				_ = app.zap.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&app.opts.ConfigPath, "config", "", "configuration file (default "+config.DefaultFile+" when present)")
	pf.StringVar(&app.opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&app.opts.LogFormat, "log-format", logging.FormatConsole, "log format: console or json")
	pf.StringVar(&app.opts.LogFile, "log-file", "", "also write JSON logs to this rotating file")

	root.AddCommand(
		newGenerateCmd(),
		newValidateCmd(),
		newServeCmd(),
		newMCPCmd(),
		newVersionCmd(),
	)
	return root
}
