package acquire

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/colossus-credit/docs/docerrors"
	"github.com/colossus-credit/docs/internal/fileutil"
	"github.com/colossus-credit/docs/logging"
	"github.com/colossus-credit/docs/openapi"
)

// Acquirer reads, canonicalizes and writes OpenAPI documents.
type Acquirer struct {
	// Validate runs structural validation before anything is written.
	Validate bool
	// Logger receives progress messages. Nil discards them.
	Logger logging.Logger
}

// New creates an Acquirer with validation enabled.
func New() *Acquirer {
	return &Acquirer{Validate: true}
}

// Result describes one acquisition.
type Result struct {
	// SourcePath is the document that was read.
	SourcePath string
	// DestinationPath is where the canonical JSON was written.
	DestinationPath string
	// SourceFormat is the encoding the source was read in.
	SourceFormat openapi.SourceFormat
	// Document is the decoded document model.
	Document *openapi.Document
	// Canonical is the written JSON.
	Canonical []byte
	// Bytes is the size of the source document.
	Bytes int
	// LoadTime covers reading, decoding and validation.
	LoadTime time.Duration
}

// Acquire reads source and writes its canonical JSON encoding to destination.
func (a *Acquirer) Acquire(ctx context.Context, source, destination string) (*Result, error) {
	log := logging.OrNop(a.Logger).With("source", source)
	start := time.Now()

	if source == "" {
		return nil, &docerrors.ConfigError{Option: "source", Message: "must not be empty"}
	}
	if destination == "" {
		return nil, &docerrors.ConfigError{Option: "destination", Message: "must not be empty"}
	}

	data, err := os.ReadFile(source) //nolint:gosec // path is operator supplied configuration
	if err != nil {
		return nil, &docerrors.SourceError{Path: source, Cause: err}
	}
	format := openapi.DetectFormat(source, data)

	if fileutil.SamePath(source, destination) && format != openapi.SourceFormatJSON {
		return nil, &docerrors.ConfigError{
			Option:  "destination",
			Value:   destination,
			Message: "would overwrite a non-JSON source with its JSON encoding",
		}
	}

	res, err := a.load(ctx, source, data, log)
	if err != nil {
		return nil, err
	}
	res.DestinationPath = destination
	res.LoadTime = time.Since(start)

	if err := fileutil.WriteAtomic(destination, res.Canonical, fileutil.ReadableByAll); err != nil {
		return nil, &docerrors.WriteError{Path: destination, Cause: err}
	}

	log.Info("acquired document",
		"destination", destination,
		"format", res.SourceFormat,
		"operations", len(res.Document.Operations),
		"schemas", len(res.Document.Schemas),
		"elapsed", res.LoadTime)

	return res, nil
}

// Check reads, decodes and (when enabled) validates source without writing
// anything. The returned Result has no DestinationPath.
func (a *Acquirer) Check(ctx context.Context, source string) (*Result, error) {
	log := logging.OrNop(a.Logger).With("source", source)
	start := time.Now()

	if source == "" {
		return nil, &docerrors.ConfigError{Option: "source", Message: "must not be empty"}
	}
	data, err := os.ReadFile(source) //nolint:gosec // path is operator supplied configuration
	if err != nil {
		return nil, &docerrors.SourceError{Path: source, Cause: err}
	}
	res, err := a.load(ctx, source, data, log)
	if err != nil {
		return nil, err
	}
	res.LoadTime = time.Since(start)
	return res, nil
}

func (a *Acquirer) load(ctx context.Context, source string, data []byte, log logging.Logger) (*Result, error) {
	canonical, err := openapi.ToCanonicalJSON(data, source)
	if err != nil {
		return nil, err
	}
	doc, err := openapi.Parse(data, openapi.WithSourceName(source), openapi.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if a.Validate {
		if err := validate(ctx, doc, canonical, log); err != nil {
			return nil, err
		}
	}
	return &Result{
		SourcePath:   source,
		SourceFormat: doc.SourceFormat,
		Document:     doc,
		Canonical:    canonical,
		Bytes:        len(data),
	}, nil
}

// validate checks OAS 3.0 documents with kin-openapi. Its openapi3 loader
// reads neither OAS 2.0 nor the JSON Schema 2020-12 dialect of OAS 3.1, so
// those documents are passed through.
func validate(ctx context.Context, doc *openapi.Document, canonical []byte, log logging.Logger) error {
	switch {
	case doc.IsOAS2():
		log.Warn("skipping structural validation for OAS 2.0 document", "version", doc.OpenAPI)
		return nil
	case doc.IsOAS31():
		log.Warn("skipping structural validation for OAS 3.1 document", "version", doc.OpenAPI)
		return nil
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = false
	loader.Context = ctx

	kdoc, err := loader.LoadFromData(canonical)
	if err != nil {
		return &docerrors.ValidationError{Path: doc.SourcePath, Message: "failed to load", Cause: err}
	}
	if err := kdoc.Validate(ctx); err != nil {
		return &docerrors.ValidationError{Path: doc.SourcePath, Message: "invalid document", Cause: err}
	}
	log.Debug("document is structurally valid")
	return nil
}

// Option configures AcquireWithOptions.
type Option func(*acquireConfig) error

type acquireConfig struct {
	source      string
	destination string
	validate    bool
	logger      logging.Logger
}

// WithSource sets the path of the document to read.
func WithSource(path string) Option {
	return func(cfg *acquireConfig) error {
		cfg.source = path
		return nil
	}
}

// WithDestination sets the path the canonical JSON is written to.
func WithDestination(path string) Option {
	return func(cfg *acquireConfig) error {
		cfg.destination = path
		return nil
	}
}

// WithValidate enables or disables structural validation.
// Default: true
func WithValidate(enabled bool) Option {
	return func(cfg *acquireConfig) error {
		cfg.validate = enabled
		return nil
	}
}

// WithLogger sets the logger for the acquisition.
func WithLogger(l logging.Logger) Option {
	return func(cfg *acquireConfig) error {
		cfg.logger = l
		return nil
	}
}

// AcquireWithOptions acquires a document using functional options.
// WithSource and WithDestination are required.
func AcquireWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg := &acquireConfig{validate: true}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("acquire: invalid options: %w", err)
		}
	}
	a := &Acquirer{Validate: cfg.validate, Logger: cfg.logger}
	return a.Acquire(ctx, cfg.source, cfg.destination)
}
