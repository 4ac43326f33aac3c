// Package docs generates reference documentation from an OpenAPI document.
//
// The work is split across small packages that form one pipeline:
//
//   - openapi: decode a YAML or JSON document into an ordered model and
//     convert it to its canonical JSON encoding
//   - acquire: read the source document, validate it and write the canonical
//     JSON artifact
//   - generator: render one MDX page per operation
//   - assemble: build meta.json, the index page and the schema page, then
//     link schema mentions to the schema page
//   - schematable: flatten schema properties into markdown tables
//   - linkify: rewrite inline code schema names into links
//   - site: serve the generated pages inside the documentation layout
//
// # Quick Start
//
// Acquire a document and generate its pages:
//
//	acquired, err := acquire.AcquireWithOptions(ctx,
//		acquire.WithSource("openapi.yaml"),
//		acquire.WithDestination("public/openapi.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithDocument(acquired.Document),
//		generator.WithBeforeWrite(assemble.Hook(assemble.DefaultOptions())),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("content/docs/api-reference"); err != nil {
//		log.Fatal(err)
//	}
//
// The apidocs command wraps the same pipeline:
//
//	apidocs generate
//	apidocs serve --addr :3000
//
// # Errors
//
// Every package reports failures with the types in docerrors, so callers can
// test categories with errors.Is:
//
//	if errors.Is(err, docerrors.ErrValidation) {
//		// the document is structurally invalid; nothing was written
//	}
//
// # Logging
//
// Packages accept a logging.Logger. Nil discards messages. The CLI uses a zap
// backed logger configured by --log-level, --log-format and --log-file.
package docs
