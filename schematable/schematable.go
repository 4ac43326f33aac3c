// Package schematable flattens nested schema properties into the rows of a
// markdown property table.
package schematable

import (
	"slices"
	"strings"

	"github.com/colossus-credit/docs/openapi"
)

// Row is one line of a property table.
type Row struct {
	// Name is the dotted path from the top-level property, e.g. "settlement.window".
	Name string
	// Type is the resolved display type.
	Type string
	// Required reports whether the enclosing object lists the property as required.
	Required bool
	// Description is the sanitized description.
	Description string
}

// Build flattens props depth-first. Each nested object's rows follow its
// parent row immediately and use the nested object's own required list.
func Build(props []*openapi.Property, required []string) []Row {
	var rows []Row
	build(&rows, props, required, "")
	return rows
}

func build(rows *[]Row, props []*openapi.Property, required []string, prefix string) {
	for _, p := range props {
		name := p.Name
		if prefix != "" {
			name = prefix + "." + p.Name
		}
		*rows = append(*rows, Row{
			Name:        name,
			Type:        p.ResolvedType(),
			Required:    slices.Contains(required, p.Name),
			Description: SanitizeCell(p.Description),
		})
		if p.IsNestedObject() {
			build(rows, p.Properties, p.Required, name)
		}
	}
}

var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// SanitizeCell makes s safe inside a markdown table cell: pipes are escaped
// and every line break becomes a single space.
func SanitizeCell(s string) string {
	return cellReplacer.Replace(s)
}

// Render renders rows as a markdown table. It returns "" for no rows.
func Render(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("| Property | Type | Required | Description |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, r := range rows {
		required := "No"
		if r.Required {
			required = "Yes"
		}
		b.WriteString("| ")
		b.WriteString(r.Name)
		b.WriteString(" | ")
		b.WriteString(CodeType(r.Type))
		b.WriteString(" | ")
		b.WriteString(required)
		b.WriteString(" | ")
		b.WriteString(r.Description)
		b.WriteString(" |\n")
	}
	return b.String()
}

// CodeType formats a display type as inline code. Array suffixes stay outside
// the code span so "Message[]" renders as "`Message`[]" and the element type
// can still be cross-linked.
func CodeType(t string) string {
	base := t
	for strings.HasSuffix(base, "[]") && len(base) > 2 {
		base = strings.TrimSuffix(base, "[]")
	}
	return "`" + base + "`" + t[len(base):]
}

// ForSchema renders the property table of a named schema.
func ForSchema(s *openapi.Schema) string {
	return Render(Build(s.Properties, s.Required))
}
