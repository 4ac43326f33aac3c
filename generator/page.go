package generator

import (
	"strings"

	"github.com/colossus-credit/docs/openapi"
	"github.com/colossus-credit/docs/schematable"
)

// pageData is the template input for one operation page.
type pageData struct {
	Title       string
	Summary     string
	Method      string
	Path        string
	Deprecated  bool
	Description string
	Parameters  []*openapi.Parameter
	RequestBody *bodyData
	Responses   []responseData
}

type bodyData struct {
	Description string
	Required    bool
	Content     []*openapi.MediaType
}

type responseData struct {
	Status      string
	Description string
	// Schema is the inline-code rendering of the first typed media type
	Schema string
}

func newPageData(op *openapi.Operation, entry Entry, includeDescription bool) pageData {
	data := pageData{
		Title:      entry.Title,
		Summary:    firstLine(op.Description),
		Method:     op.Method,
		Path:       op.Path,
		Deprecated: op.Deprecated,
		Parameters: op.Parameters,
	}
	if includeDescription {
		data.Description = strings.TrimSpace(op.Description)
	}
	if op.RequestBody != nil {
		data.RequestBody = &bodyData{
			Description: op.RequestBody.Description,
			Required:    op.RequestBody.Required,
			Content:     typedContent(op.RequestBody.Content),
		}
	}
	for _, r := range op.Responses {
		data.Responses = append(data.Responses, responseData{
			Status:      r.Status,
			Description: r.Description,
			Schema:      schemaCell(r.Content),
		})
	}
	return data
}

func renderPage(data pageData) ([]byte, error) {
	return executeTemplate("page.mdx.tmpl", data)
}

func typedContent(content []*openapi.MediaType) []*openapi.MediaType {
	var out []*openapi.MediaType
	for _, mt := range content {
		if mt.Type != "" {
			out = append(out, mt)
		}
	}
	return out
}

// schemaCell renders the response schema column. Named schemas read
// "`Pet` schema", primitives and arrays are shown as inline code only.
func schemaCell(content []*openapi.MediaType) string {
	typed := typedContent(content)
	if len(typed) == 0 {
		return ""
	}
	t := typed[0].Type
	if strings.HasSuffix(t, "[]") || isPrimitive(t) {
		return schematable.CodeType(t)
	}
	return "`" + t + "` schema"
}

func isPrimitive(t string) bool {
	switch t {
	case "string", "integer", "number", "boolean", "object", "array", "null", openapi.AnyType:
		return true
	}
	return strings.Contains(t, ", ")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
