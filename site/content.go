package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.yaml.in/yaml/v4"

	"github.com/colossus-credit/docs/assemble"
	"github.com/colossus-credit/docs/generator"
)

// errPageNotFound is returned for page ids missing from the content dir.
var errPageNotFound = errors.New("page not found")

// Frontmatter is the YAML header of a generated page.
type Frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OpenAPI     struct {
		Method string `yaml:"method"`
		Route  string `yaml:"route"`
	} `yaml:"_openapi"`
}

// Page is a rendered page.
type Page struct {
	ID          string
	Frontmatter Frontmatter
	HTML        template.HTML
}

// NavItem is one entry of the navigation tree.
type NavItem struct {
	Title  string
	Href   string
	Method string
	Active bool
}

// Nav is the navigation section built from meta.json.
type Nav struct {
	Title string
	Items []NavItem
}

type content struct {
	dir     string
	baseURL string
	md      goldmark.Markdown
}

func newContent(dir, baseURL string) *content {
	return &content{
		dir:     dir,
		baseURL: baseURL,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// pageIDPattern matches the ids the generator produces.
const pageIDPattern = `[a-z0-9][a-z0-9-]*`

var validPageID = regexp.MustCompile(`^` + pageIDPattern + `$`)

func (c *content) source(id string) ([]byte, error) {
	if !validPageID.MatchString(id) {
		return nil, errPageNotFound
	}
	data, err := os.ReadFile(filepath.Join(c.dir, id+generator.PageExt))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errPageNotFound
	}
	return data, err
}

func (c *content) manifest() (assemble.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, assemble.ManifestFile))
	if err != nil {
		return assemble.Manifest{}, err
	}
	return assemble.ParseManifest(data)
}

// nav builds the navigation tree, marking activeID. Pages listed in the
// manifest but missing on disk are skipped.
func (c *content) nav(activeID string) (Nav, error) {
	m, err := c.manifest()
	if err != nil {
		return Nav{}, err
	}
	nav := Nav{Title: m.Title}
	for _, id := range m.Pages {
		data, err := c.source(id)
		if err != nil {
			continue
		}
		fm, _, err := splitFrontmatter(data)
		if err != nil {
			return Nav{}, fmt.Errorf("page %s: %w", id, err)
		}
		title := fm.Title
		if title == "" {
			title = id
		}
		nav.Items = append(nav.Items, NavItem{
			Title:  title,
			Href:   c.href(id),
			Method: fm.OpenAPI.Method,
			Active: id == activeID,
		})
	}
	return nav, nil
}

func (c *content) href(id string) string {
	if id == assemble.IndexPageID {
		return c.baseURL
	}
	return c.baseURL + "/" + id
}

func (c *content) page(id string) (*Page, error) {
	data, err := c.source(id)
	if err != nil {
		return nil, err
	}
	fm, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", id, err)
	}
	var buf bytes.Buffer
	if err := c.md.Convert(rewriteCards(body), &buf); err != nil {
		return nil, fmt.Errorf("page %s: %w", id, err)
	}
	//nolint:gosec // generated content from the local content directory
	return &Page{ID: id, Frontmatter: fm, HTML: template.HTML(buf.String())}, nil
}

// splitFrontmatter separates the YAML header delimited by "---" lines from
// the body. Pages without a header have an empty Frontmatter.
func splitFrontmatter(data []byte) (Frontmatter, []byte, error) {
	var fm Frontmatter
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return fm, []byte(text), nil
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return fm, nil, errors.New("unterminated frontmatter")
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, nil, fmt.Errorf("invalid frontmatter: %w", err)
	}
	return fm, []byte(rest[end+len("\n---\n"):]), nil
}

var (
	importLine = regexp.MustCompile(`(?m)^import .*;\n`)
	methodCard = regexp.MustCompile(`<Card href="([^"]*)" title=\{<><span className="([^"]*)">([^<]*)</span> ([^<]*)</>\} description="([^"]*)" />`)
	plainCard  = regexp.MustCompile(`<Card href="([^"]*)" title="([^"]*)" description="([^"]*)" />`)
)

// rewriteCards turns the Cards components of generated pages into plain HTML
// so the markdown renderer passes them through.
func rewriteCards(body []byte) []byte {
	s := importLine.ReplaceAllString(string(body), "")
	s = strings.ReplaceAll(s, "<Cards>", `<div class="cards">`)
	s = strings.ReplaceAll(s, "</Cards>", "</div>")
	s = methodCard.ReplaceAllStringFunc(s, func(m string) string {
		g := methodCard.FindStringSubmatch(m)
		return fmt.Sprintf(`<a class="card" href="%s"><span class="method %s">%s</span> %s<small>%s</small></a>`,
			template.HTMLEscapeString(g[1]), template.HTMLEscapeString(g[2]),
			template.HTMLEscapeString(g[3]), template.HTMLEscapeString(g[4]), template.HTMLEscapeString(g[5]))
	})
	s = plainCard.ReplaceAllStringFunc(s, func(m string) string {
		g := plainCard.FindStringSubmatch(m)
		return fmt.Sprintf(`<a class="card" href="%s">%s<small>%s</small></a>`,
			template.HTMLEscapeString(g[1]), template.HTMLEscapeString(g[2]), template.HTMLEscapeString(g[3]))
	})
	return []byte(s)
}
