package commands

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/colossus-credit/docs/site"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr     string
	Generate bool
}

func newServeCmd() *cobra.Command {
	flags := &ServeFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated pages inside the documentation layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			cfg := app.cfg
			if cmd.Flags().Changed("addr") {
				cfg.Site.Addr = flags.Addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if flags.Generate {
				if _, err := runPipeline(ctx, cfg, app.log); err != nil {
					return err
				}
			}

			handler, err := newSiteHandler(app)
			if err != nil {
				return err
			}
			return site.ListenAndServe(ctx, cfg.Site.Addr, handler, app.log)
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", "", "listen address (default from config, :3000)")
	cmd.Flags().BoolVar(&flags.Generate, "generate", false, "run generate before serving")
	return cmd
}

// newSiteHandler builds the site with Go runtime and process metrics
// registered next to the request metrics.
func newSiteHandler(app *appState) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cfg := app.cfg
	return site.New(site.Options{
		Title:      cfg.Site.Title,
		LogoURL:    cfg.Site.Logo,
		BaseURL:    cfg.Docs.BaseURL,
		ContentDir: cfg.Docs.Output,
		PublicDir:  cfg.Site.PublicDir,
	}, app.log, reg)
}
