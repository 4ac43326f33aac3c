// Package acquire reads the source OpenAPI document, converts it to the
// canonical JSON encoding and writes that artifact where the page generator
// and the documentation site expect it.
//
// Basic usage:
//
//	result, err := acquire.AcquireWithOptions(ctx,
//		acquire.WithSource("openapi.yaml"),
//		acquire.WithDestination("openapi.json"),
//	)
//
// Every failure is fatal: nothing is written unless the source was read,
// decoded and (optionally) validated.
package acquire
