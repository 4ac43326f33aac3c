// Package openapi loads an OpenAPI document into the read-only model that the
// documentation pipeline renders from.
//
// The model is intentionally small: operations (path, method, title fields,
// parameters, bodies, responses) and named schemas with their property trees.
// It is decoded from a [yaml.Node] rather than Go maps so that paths, methods
// and properties keep the insertion order of the source document, which is the
// order pages, manifest entries and table rows are emitted in.
//
// Both JSON and YAML sources are accepted (JSON is parsed as YAML). OAS 2.0
// documents are read from "definitions" and body parameters; OAS 3.x documents
// from "components.schemas" and requestBody.
//
// Example:
//
//	doc, err := openapi.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, op := range doc.Operations {
//		fmt.Println(op.Method, op.Path)
//	}
//
// [ToCanonicalJSON] converts either encoding into the canonical indented JSON
// artifact while keeping source key order.
package openapi
