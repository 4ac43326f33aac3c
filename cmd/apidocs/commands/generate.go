package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/colossus-credit/docs/acquire"
	"github.com/colossus-credit/docs/assemble"
	"github.com/colossus-credit/docs/generator"
	"github.com/colossus-credit/docs/internal/cliutil"
	"github.com/colossus-credit/docs/internal/config"
	"github.com/colossus-credit/docs/logging"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Source        string
	Destination   string
	Output        string
	BaseURL       string
	NoSchemas     bool
	NoValidate    bool
	NoDescription bool
}

// apply copies the flags that were set on the command line onto cfg.
func (f *GenerateFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Spec.Source = f.Source
	}
	if flags.Changed("destination") {
		cfg.Spec.Destination = f.Destination
	}
	if flags.Changed("output") {
		cfg.Docs.Output = f.Output
	}
	if flags.Changed("base-url") {
		cfg.Docs.BaseURL = f.BaseURL
	}
	if f.NoSchemas {
		cfg.Docs.Schemas = false
	}
	if f.NoValidate {
		cfg.Spec.Validate = false
	}
	if f.NoDescription {
		cfg.Docs.IncludeDescription = false
	}
}

func newGenerateCmd() *cobra.Command {
	flags := &GenerateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Convert the OpenAPI document and generate the reference pages",
		Long: "Reads the source document, writes its canonical JSON encoding, then writes\n" +
			"one page per operation plus index.mdx, meta.json and schemas.mdx into the\n" +
			"output directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}
			flags.apply(cmd, app.cfg)
			if err := app.cfg.Validate(); err != nil {
				return err
			}

			summary, err := runPipeline(cmd.Context(), app.cfg, app.log)
			if err != nil {
				return err
			}
			summary.print(cmd)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.Source, "source", "", "OpenAPI document to read (YAML or JSON)")
	f.StringVar(&flags.Destination, "destination", "", "where to write the canonical JSON document")
	f.StringVarP(&flags.Output, "output", "o", "", "directory to write the pages to")
	f.StringVar(&flags.BaseURL, "base-url", "", "URL prefix the pages are served under")
	f.BoolVar(&flags.NoSchemas, "no-schemas", false, "skip the schema page and cross-links")
	f.BoolVar(&flags.NoValidate, "no-validate", false, "skip structural validation")
	f.BoolVar(&flags.NoDescription, "no-description", false, "omit operation descriptions from page bodies")
	return cmd
}

type pipelineSummary struct {
	Source      string
	Destination string
	Output      string
	Operations  int
	Schemas     int
	Files       int
	Elapsed     time.Duration
}

// runPipeline acquires the document, renders every page and writes them.
func runPipeline(ctx context.Context, cfg *config.Config, log logging.Logger) (*pipelineSummary, error) {
	start := time.Now()

	acquirer := acquire.New()
	acquirer.Validate = cfg.Spec.Validate
	acquirer.Logger = log
	acquired, err := acquirer.Acquire(ctx, cfg.Spec.Source, cfg.Spec.Destination)
	if err != nil {
		return nil, err
	}

	opts := assemble.Options{
		ManifestTitle:    cfg.Docs.ManifestTitle,
		IndexTitle:       cfg.Docs.IndexTitle,
		IndexDescription: cfg.Docs.IndexDescription,
		SchemaTitle:      cfg.Docs.SchemaTitle,
		BaseURL:          cfg.Docs.BaseURL,
		Schemas:          cfg.Docs.Schemas,
		Logger:           log,
	}

	gen := generator.New()
	gen.IncludeDescription = cfg.Docs.IncludeDescription
	gen.BaseURL = cfg.Docs.BaseURL
	gen.BeforeWrite = assemble.Hook(opts)
	gen.Logger = log

	result, err := gen.Generate(acquired.Document)
	if err != nil {
		return nil, err
	}
	if err := result.WriteFiles(cfg.Docs.Output); err != nil {
		return nil, err
	}

	return &pipelineSummary{
		Source:      cfg.Spec.Source,
		Destination: cfg.Spec.Destination,
		Output:      cfg.Docs.Output,
		Operations:  len(result.Entries),
		Schemas:     len(acquired.Document.Schemas),
		Files:       len(result.Files),
		Elapsed:     time.Since(start),
	}, nil
}

func (s *pipelineSummary) print(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	p := cliutil.NewPainter(out)
	cliutil.Writef(out, "%s %s -> %s\n", p.Paint(cliutil.Green, "Converted"), s.Source, s.Destination)
	cliutil.Writef(out, "%s %d files (%d operations, %d schemas) in %s\n",
		p.Paint(cliutil.Green, "Generated"), s.Files, s.Operations, s.Schemas, s.Output)
	cliutil.Writef(out, "Done in %v\n", s.Elapsed.Round(time.Millisecond))
}

// printKV writes an aligned key/value line.
func printKV(cmd *cobra.Command, key string, value any) {
	cliutil.Writef(cmd.OutOrStdout(), "%-12s %v\n", key+":", value)
}
