package mcpserver

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/colossus-credit/docs/generator"
	"github.com/colossus-credit/docs/openapi"
)

type listOperationsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OpenAPI document to list"`
	Method string    `json:"method,omitempty" jsonschema:"Filter by HTTP method (get\\, post\\, put\\, delete\\, patch\\, etc.)"`
	Tag    string    `json:"tag,omitempty"    jsonschema:"Filter by tag name"`
	Path   string    `json:"path,omitempty"   jsonschema:"Filter by path pattern (supports * glob per segment)"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of results to return (default 100)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N results (for pagination)"`
}

type operationSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	PageID      string   `json:"page_id"`
	Title       string   `json:"title"`
	OperationID string   `json:"operation_id,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
}

type listOperationsOutput struct {
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations,omitempty"`
}

func handleListOperations(_ context.Context, _ *mcp.CallToolRequest, input listOperationsInput) (*mcp.CallToolResult, listOperationsOutput, error) {
	if input.Path != "" {
		if _, err := path.Match(input.Path, ""); err != nil {
			return errResult(fmt.Errorf("invalid path pattern %q: %w", input.Path, err)), listOperationsOutput{}, nil
		}
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	// Page ids depend on every operation, so they come from a full render.
	result, err := generator.New().Generate(doc)
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	var matched []operationSummary
	for i, op := range doc.Operations {
		if !matchOperation(op, input) {
			continue
		}
		entry := result.Entries[i]
		matched = append(matched, operationSummary{
			Method:      op.Method,
			Path:        op.Path,
			PageID:      entry.PageID,
			Title:       entry.Title,
			OperationID: op.OperationID,
			Tags:        op.Tags,
			Deprecated:  op.Deprecated,
		})
	}

	page := paginate(matched, input.Offset, input.Limit)
	return nil, listOperationsOutput{
		Total:      len(doc.Operations),
		Matched:    len(matched),
		Returned:   len(page),
		Operations: page,
	}, nil
}

func matchOperation(op *openapi.Operation, input listOperationsInput) bool {
	if input.Method != "" && !strings.EqualFold(op.Method, input.Method) {
		return false
	}
	if input.Tag != "" && !slices.Contains(op.Tags, input.Tag) {
		return false
	}
	if input.Path != "" {
		if ok, _ := path.Match(input.Path, op.Path); !ok {
			return false
		}
	}
	return true
}
