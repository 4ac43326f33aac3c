// Package assemble builds the navigation and overview files that surround
// the generated operation pages: the meta.json manifest, the index page with
// one method-coloured card per operation, and the schema reference page.
//
// Hook wires all of it into the generator:
//
//	result, err := generator.GenerateWithOptions(
//		generator.WithDocument(doc),
//		generator.WithBeforeWrite(assemble.Hook(assemble.DefaultOptions())),
//	)
package assemble
