// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the documentation generator as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	docs "github.com/colossus-credit/docs"
)

const serverInstructions = `apidocs MCP server: inspects OpenAPI documents and generates reference documentation pages.

Configuration: defaults are configurable via APIDOCS_MCP_* environment variables set in your MCP client config.

Key settings:
- APIDOCS_MCP_CACHE_ENABLED (default: true): disable document caching entirely
- APIDOCS_MCP_CACHE_FILE_TTL (default: 15m): cache TTL for local files
- APIDOCS_MCP_LIST_LIMIT (default: 100): default result limit for list_operations
- APIDOCS_MCP_BASE_URL (default: /api-reference): URL prefix of generated pages
- APIDOCS_MCP_SCHEMAS (default: true): generate the schema page and cross-links

Caching: parsed documents are cached per session. File entries use path+mtime as key.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidocs", Version: docs.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List the operations of an OpenAPI document in documentation order, with the page id and title each one gets in the generated docs. Filter by method, tag, or path pattern (supports * glob per segment). Use offset/limit to paginate.",
	}, handleListOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_table",
		Description: "Render the property table of one named schema as markdown, flattening nested object properties into dotted rows. Returns the rows as structured data too.",
	}, handleSchemaTable)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_docs",
		Description: "Generate the reference documentation for an OpenAPI document into output_dir: one MDX page per operation, index.mdx, meta.json and (unless no_schemas) schemas.mdx with cross-links. Optionally writes the canonical JSON document to canonical_path. Returns the navigation manifest and the written files.",
	}, handleGenerateDocs)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
