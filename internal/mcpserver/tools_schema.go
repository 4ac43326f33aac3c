package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/colossus-credit/docs/schematable"
)

type schemaTableInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document containing the schema"`
	Name string    `json:"name" jsonschema:"Schema name as declared under components.schemas (or definitions)"`
}

type schemaRow struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

type schemaTableOutput struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Rows        []schemaRow `json:"rows,omitempty"`
	Markdown    string      `json:"markdown"`
}

func handleSchemaTable(_ context.Context, _ *mcp.CallToolRequest, input schemaTableInput) (*mcp.CallToolResult, schemaTableOutput, error) {
	if input.Name == "" {
		return errResult(fmt.Errorf("name is required")), schemaTableOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), schemaTableOutput{}, nil
	}

	schema := doc.Schema(input.Name)
	if schema == nil {
		return errResult(fmt.Errorf("schema %q not found; available: %s",
			input.Name, strings.Join(doc.SchemaNames(), ", "))), schemaTableOutput{}, nil
	}

	rows := schematable.Build(schema.Properties, schema.Required)
	out := schemaTableOutput{
		Name:        schema.Name,
		Description: schema.Description,
		Markdown:    schematable.Render(rows),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, schemaRow(r))
	}
	return nil, out, nil
}
