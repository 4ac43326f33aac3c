package assemble

import (
	"fmt"
	"strings"

	"github.com/colossus-credit/docs/generator"
	"github.com/colossus-credit/docs/linkify"
	"github.com/colossus-credit/docs/logging"
	"github.com/colossus-credit/docs/openapi"
)

// Hook returns a generator.BeforeWriteFunc that appends the manifest, the
// index page and (when enabled) the schema page, then links schema mentions
// in the operation pages and the schema page.
func Hook(opts Options) generator.BeforeWriteFunc {
	log := logging.OrNop(opts.Logger)

	return func(doc *openapi.Document, result *generator.Result) error {
		o := opts
		if o.BaseURL == "" {
			o.BaseURL = result.BaseURL
		}
		manifest, err := BuildManifest(o.ManifestTitle, result.Entries, o.Schemas).Encode()
		if err != nil {
			return fmt.Errorf("assemble: encoding manifest: %w", err)
		}

		pages := result.PageFiles()
		result.Files = append(result.Files,
			&generator.File{Name: ManifestFile, Content: manifest},
			&generator.File{Name: IndexPageID + generator.PageExt, Content: IndexPage(o, result.Entries)},
		)
		log.Debug("assembled navigation", "pages", len(result.Entries))

		if !o.Schemas {
			return nil
		}
		schemaFile := &generator.File{Name: SchemaPageID + generator.PageExt, Content: SchemaPage(o, doc)}
		result.Files = append(result.Files, schemaFile)

		linker := linkify.New(doc.SchemaNames(), o.SchemaPageURL())
		targets := make([]linkify.File, 0, len(pages)+1)
		for _, f := range pages {
			targets = append(targets, f)
		}
		targets = append(targets, schemaFile)
		changed := linker.ApplyFiles(targets, func(name string) bool {
			return strings.HasSuffix(name, generator.PageExt)
		})
		log.Debug("linked schema references", "schemas", linker.Len(), "files", changed)
		return nil
	}
}
