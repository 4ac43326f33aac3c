package assemble

import (
	"fmt"
	"html"
	"strings"

	"github.com/colossus-credit/docs/openapi"
	"github.com/colossus-credit/docs/schematable"
)

// SchemaPage renders the schema reference page: a card per schema linking to
// its section, then one section per schema with its property table.
func SchemaPage(opts Options, doc *openapi.Document) []byte {
	var b strings.Builder
	frontmatter(&b, opts.SchemaTitle, fmt.Sprintf("Data structures used by %s.", docName(doc)))

	if len(doc.Schemas) == 0 {
		b.WriteString("This API defines no schemas.\n")
		return []byte(b.String())
	}

	b.WriteString(cardsImport)
	b.WriteString("<Cards>\n")
	for _, s := range doc.Schemas {
		fmt.Fprintf(&b, "  <Card href=\"#%s\" title=\"%s\" description=\"%s\" />\n",
			schemaAnchor(s.Name), s.Name, CardDescription(s.Description))
	}
	b.WriteString("</Cards>\n")

	for _, s := range doc.Schemas {
		// explicit anchor: heading ids differ between renderers
		fmt.Fprintf(&b, "\n## <a id=\"%s\"></a>%s\n", schemaAnchor(s.Name), s.Name)
		if d := strings.TrimSpace(s.Description); d != "" {
			b.WriteString("\n")
			b.WriteString(d)
			b.WriteString("\n")
		}
		if table := schematable.ForSchema(s); table != "" {
			b.WriteString("\n")
			b.WriteString(table)
		} else if s.Type != "" && s.Type != "object" {
			fmt.Fprintf(&b, "\nType: %s\n", schematable.CodeType(s.Type))
		}
	}
	return []byte(b.String())
}

// schemaAnchor is the fragment the cards and the linkifier point at.
func schemaAnchor(name string) string {
	return html.EscapeString(strings.ToLower(name))
}

func docName(doc *openapi.Document) string {
	if doc.Title != "" {
		return "the " + doc.Title
	}
	return "this API"
}
