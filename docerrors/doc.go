// Package docerrors provides structured error types for apidocs.
//
// Import path: github.com/colossus-credit/docs/docerrors
//
// Every failure in the generation pipeline is fatal, but callers (the CLI, the
// MCP tools) still want to tell the categories apart via [errors.Is] and
// [errors.As]:
//
//   - [SourceError]: the configured source document could not be read
//   - [ParseError]: the document is not valid YAML/JSON
//   - [ValidationError]: the document is structurally invalid OpenAPI
//   - [ConfigError]: invalid configuration or options
//   - [WriteError]: an output artifact could not be written
//
// Each type has a matching sentinel ([ErrSource], [ErrParse], [ErrValidation],
// [ErrConfig], [ErrWrite]) so a quick category check needs no type assertion:
//
//	res, err := acquire.Acquire(acquire.WithSource("openapi.yaml"))
//	if errors.Is(err, docerrors.ErrSource) {
//	    // nothing was written
//	}
//
// All types carry an optional Cause and implement Unwrap:
//
//	var srcErr *docerrors.SourceError
//	if errors.As(err, &srcErr) && errors.Is(srcErr.Cause, os.ErrNotExist) {
//	    fmt.Printf("document not found: %s\n", srcErr.Path)
//	}
package docerrors
