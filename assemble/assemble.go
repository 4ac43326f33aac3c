package assemble

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/colossus-credit/docs/generator"
	"github.com/colossus-credit/docs/logging"
)

// File names and page ids of the assembled files.
const (
	ManifestFile = "meta.json"
	IndexPageID  = "index"
	SchemaPageID = "schemas"
)

// Options configures the assembled files.
type Options struct {
	// ManifestTitle is the navigation section title in meta.json
	ManifestTitle string
	// IndexTitle is the title of the index page
	IndexTitle string
	// IndexDescription is the frontmatter description of the index page
	IndexDescription string
	// SchemaTitle is the title of the schema page
	SchemaTitle string
	// BaseURL is the URL prefix of the generated pages
	BaseURL string
	// Schemas enables the schema page and cross-linking
	Schemas bool
	// Logger receives progress messages. Nil discards them.
	Logger logging.Logger
}

// DefaultOptions returns the options used by the apidocs CLI.
func DefaultOptions() Options {
	return Options{
		ManifestTitle:    "API Reference",
		IndexTitle:       "Overview",
		IndexDescription: "Every operation of the API.",
		SchemaTitle:      "Schemas",
		BaseURL:          generator.DefaultBaseURL,
		Schemas:          true,
	}
}

func (o Options) baseURL() string {
	if o.BaseURL == "" {
		return generator.DefaultBaseURL
	}
	return strings.TrimSuffix(o.BaseURL, "/")
}

// SchemaPageURL returns the URL of the schema page.
func (o Options) SchemaPageURL() string {
	return o.baseURL() + "/" + SchemaPageID
}

// Manifest is the navigation manifest written as meta.json.
type Manifest struct {
	Title string   `json:"title"`
	Pages []string `json:"pages"`
}

// BuildManifest lists the index page, the schema page when enabled, then one
// page id per entry in generation order.
func BuildManifest(title string, entries []generator.Entry, withSchemas bool) Manifest {
	pages := make([]string, 0, len(entries)+2)
	pages = append(pages, IndexPageID)
	if withSchemas {
		pages = append(pages, SchemaPageID)
	}
	for _, e := range entries {
		pages = append(pages, e.PageID)
	}
	return Manifest{Title: title, Pages: pages}
}

// Encode renders the manifest as JSON with two-space indentation.
func (m Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ParseManifest decodes a meta.json file.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assemble: invalid manifest: %w", err)
	}
	return m, nil
}

// MethodColor returns the text colour classes for an HTTP method badge.
func MethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "POST":
		return "text-blue-600 dark:text-blue-400"
	case "PUT":
		return "text-yellow-600 dark:text-yellow-400"
	case "DELETE":
		return "text-red-600 dark:text-red-400"
	case "PATCH":
		return "text-orange-600 dark:text-orange-400"
	default:
		return "text-green-600 dark:text-green-400"
	}
}

// CardDescription returns the first line of s with double quotes replaced by
// single quotes, so it fits a quoted attribute.
func CardDescription(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

func frontmatter(b *strings.Builder, title, description string) {
	b.WriteString("---\n")
	fmt.Fprintf(b, "title: %q\n", title)
	if description != "" {
		fmt.Fprintf(b, "description: %q\n", description)
	}
	b.WriteString("---\n\n")
}

const cardsImport = "import { Cards, Card } from 'fumadocs-ui/components/card';\n\n"

// IndexPage renders the overview page with one card per operation.
func IndexPage(opts Options, entries []generator.Entry) []byte {
	var b strings.Builder
	frontmatter(&b, opts.IndexTitle, opts.IndexDescription)
	b.WriteString(cardsImport)
	b.WriteString("<Cards>\n")
	for _, e := range entries {
		fmt.Fprintf(&b,
			"  <Card href=\"%s/%s\" title={<><span className=\"font-mono font-medium %s\">%s</span> %s</>} description=\"%s\" />\n",
			opts.baseURL(), e.PageID, MethodColor(e.Method), e.Method, e.Title, CardDescription(e.Description))
	}
	b.WriteString("</Cards>\n")
	return []byte(b.String())
}
