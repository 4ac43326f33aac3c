// Package site serves the generated documentation inside the branded layout:
// a navigation tree built from meta.json, pages rendered from their MDX
// source and a static directory for the logo and the canonical document.
//
//	handler, err := site.New(site.Options{ContentDir: "content/docs/api-reference"}, logger, nil)
//	if err != nil {
//		return err
//	}
//	return site.ListenAndServe(ctx, ":3000", handler, logger)
package site
