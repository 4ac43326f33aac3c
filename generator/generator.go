package generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/colossus-credit/docs/internal/naming"
	"github.com/colossus-credit/docs/logging"
	"github.com/colossus-credit/docs/openapi"
)

// PageExt is the file extension of generated pages.
const PageExt = ".mdx"

// DefaultBaseURL is the URL prefix the pages are served under.
const DefaultBaseURL = "/api-reference"

// File is a single generated file.
type File struct {
	// Name is the file name relative to the output directory (e.g. "list-pets.mdx")
	Name string
	// Content is the file content
	Content []byte
}

// FileName returns the file name.
func (f *File) FileName() string { return f.Name }

// Bytes returns the file content.
func (f *File) Bytes() []byte { return f.Content }

// SetBytes replaces the file content.
func (f *File) SetBytes(b []byte) { f.Content = b }

// Entry describes one generated operation page.
type Entry struct {
	// PageID is the file name without extension, also used in URLs
	PageID string
	// Path is the operation's route
	Path string
	// Method is the upper case HTTP method
	Method string
	// Title is the page title
	Title string
	// Description is the operation description, possibly multi-line
	Description string
	// File is the page file name
	File string
}

// Result contains the pages generated from a document.
type Result struct {
	// Files contains every generated file; hooks may append to it
	Files []*File
	// Entries lists operation pages in emission order
	Entries []Entry
	// BaseURL is the URL prefix the pages are served under
	BaseURL string
	// GenerateTime is the time taken to render the pages and run the hook
	GenerateTime time.Duration
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *Result) GetFile(name string) *File {
	for _, f := range r.Files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// PageFiles returns the operation page files in emission order.
func (r *Result) PageFiles() []*File {
	files := make([]*File, 0, len(r.Entries))
	for _, e := range r.Entries {
		if f := r.GetFile(e.File); f != nil {
			files = append(files, f)
		}
	}
	return files
}

// BeforeWriteFunc runs after all pages are rendered and before they are
// written. Returning an error aborts generation.
type BeforeWriteFunc func(doc *openapi.Document, result *Result) error

// Generator renders operation pages.
type Generator struct {
	// IncludeDescription writes the operation description into the page body
	IncludeDescription bool
	// BaseURL is the URL prefix pages are served under
	BaseURL string
	// BeforeWrite is called with the rendered result before it is returned
	BeforeWrite BeforeWriteFunc
	// Logger receives progress messages. Nil discards them.
	Logger logging.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		IncludeDescription: true,
		BaseURL:            DefaultBaseURL,
	}
}

// Generate renders one page per operation of doc.
func (g *Generator) Generate(doc *openapi.Document) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("generator: document is nil")
	}
	log := logging.OrNop(g.Logger)
	start := time.Now()

	result := &Result{BaseURL: g.baseURL()}
	ids := make(map[string]int, len(doc.Operations))

	for _, op := range doc.Operations {
		id := uniqueID(ids, naming.PageSlug(op.OperationID, op.Method, op.Path))
		entry := Entry{
			PageID:      id,
			Path:        op.Path,
			Method:      op.Method,
			Title:       OperationTitle(op),
			Description: op.Description,
			File:        id + PageExt,
		}

		content, err := renderPage(newPageData(op, entry, g.IncludeDescription))
		if err != nil {
			return nil, fmt.Errorf("generator: rendering %s %s: %w", op.Method, op.Path, err)
		}
		result.Files = append(result.Files, &File{Name: entry.File, Content: content})
		result.Entries = append(result.Entries, entry)
		log.Debug("rendered page", "page", id, "method", op.Method, "path", op.Path)
	}

	if g.BeforeWrite != nil {
		if err := g.BeforeWrite(doc, result); err != nil {
			return nil, fmt.Errorf("generator: before write hook: %w", err)
		}
	}
	result.GenerateTime = time.Since(start)

	log.Info("generated pages", "pages", len(result.Entries), "files", len(result.Files), "elapsed", result.GenerateTime)
	return result, nil
}

func (g *Generator) baseURL() string {
	if g.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimSuffix(g.BaseURL, "/")
}

// uniqueID returns id, or id with a numeric suffix when it was seen before.
func uniqueID(seen map[string]int, id string) string {
	seen[id]++
	n := seen[id]
	if n == 1 {
		return id
	}
	candidate := id + "-" + strconv.Itoa(n)
	for seen[candidate] > 0 {
		n++
		candidate = id + "-" + strconv.Itoa(n)
	}
	seen[candidate]++
	return candidate
}

// OperationTitle returns the display title of an operation: its summary, its
// title-cased operationId, or "METHOD path".
func OperationTitle(op *openapi.Operation) string {
	if s := strings.TrimSpace(op.Summary); s != "" {
		return s
	}
	if t := naming.ToTitleWords(op.OperationID); t != "" {
		return t
	}
	return op.Method + " " + op.Path
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

type generateConfig struct {
	doc                *openapi.Document
	includeDescription bool
	baseURL            string
	beforeWrite        BeforeWriteFunc
	logger             logging.Logger
}

// GenerateWithOptions generates pages using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithDocument(doc),
//	    generator.WithBeforeWrite(assemble.Hook(opts)),
//	)
func GenerateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		IncludeDescription: cfg.includeDescription,
		BaseURL:            cfg.baseURL,
		BeforeWrite:        cfg.beforeWrite,
		Logger:             cfg.logger,
	}
	return g.Generate(cfg.doc)
}

func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		includeDescription: true,
		baseURL:            DefaultBaseURL,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.doc == nil {
		return nil, fmt.Errorf("a document must be specified with WithDocument")
	}
	return cfg, nil
}

// WithDocument specifies the document to generate pages for.
func WithDocument(doc *openapi.Document) Option {
	return func(cfg *generateConfig) error {
		cfg.doc = doc
		return nil
	}
}

// WithIncludeDescription toggles the description body on each page.
// Default: true
func WithIncludeDescription(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeDescription = enabled
		return nil
	}
}

// WithBaseURL sets the URL prefix pages are served under.
// Default: "/api-reference"
func WithBaseURL(url string) Option {
	return func(cfg *generateConfig) error {
		if url != "" && !strings.HasPrefix(url, "/") {
			return fmt.Errorf("base URL %q must start with /", url)
		}
		cfg.baseURL = url
		return nil
	}
}

// WithBeforeWrite sets the hook run before the result is returned.
func WithBeforeWrite(fn BeforeWriteFunc) Option {
	return func(cfg *generateConfig) error {
		cfg.beforeWrite = fn
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
