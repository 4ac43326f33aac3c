// Package generator renders one MDX documentation page per OpenAPI operation.
//
// # Quick Start
//
// Generate pages using functional options:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithDocument(doc),
//		generator.WithIncludeDescription(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./content/docs/api-reference"); err != nil {
//		log.Fatal(err)
//	}
//
// Or use a reusable Generator instance:
//
//	g := generator.New()
//	g.BaseURL = "/reference"
//	result, _ := g.Generate(doc)
//
// # Pages
//
// Each page carries YAML frontmatter (title, description and the operation's
// method and route), an optional description body, a parameter table, the
// request body and a response table. Schema types are written as inline code
// (`Pet`) so they can be cross-linked afterwards.
//
// Page ids are the kebab-cased operationId, or method and path when the
// operation has none. Repeated ids get a numeric suffix ("list-pets-2").
//
// # Hooks
//
// A BeforeWriteFunc runs after every page is rendered and before anything is
// written. It may inspect Result.Entries and append or rewrite Result.Files;
// the navigation manifest, the index page and the schema page are produced
// this way.
package generator
