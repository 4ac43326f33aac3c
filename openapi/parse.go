package openapi

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/colossus-credit/docs/docerrors"
	"github.com/colossus-credit/docs/logging"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

type parseConfig struct {
	sourceName string
	logger     logging.Logger
}

// WithSourceName sets the name reported in errors and Document.SourcePath.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithLogger sets the logger used while decoding.
// Default: logging.NopLogger
func WithLogger(l logging.Logger) Option {
	return func(cfg *parseConfig) error {
		if l == nil {
			return &docerrors.ConfigError{Option: "logger", Message: "must not be nil"}
		}
		cfg.logger = l
		return nil
	}
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{logger: logging.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Load reads and parses the document at path. A read failure is reported as a
// *docerrors.SourceError.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator supplied configuration
	if err != nil {
		return nil, &docerrors.SourceError{Path: path, Cause: err}
	}
	return Parse(data, append([]Option{WithSourceName(path)}, opts...)...)
}

// Parse decodes data (JSON or YAML) into a Document.
func Parse(data []byte, opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("openapi: invalid options: %w", err)
	}

	start := time.Now()
	root, err := ParseNode(data, cfg.sourceName)
	if err != nil {
		return nil, err
	}

	d := &decoder{root: root, source: cfg.sourceName, log: cfg.logger}
	doc, err := d.document()
	if err != nil {
		return nil, err
	}
	doc.SourcePath = cfg.sourceName
	doc.SourceFormat = DetectFormat(cfg.sourceName, data)

	cfg.logger.Debug("parsed document",
		"source", cfg.sourceName,
		"operations", len(doc.Operations),
		"schemas", len(doc.Schemas),
		"elapsed", time.Since(start))
	return doc, nil
}

// ParseNode parses data into the root mapping node of the document.
func ParseNode(data []byte, source string) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, newParseError(source, err)
	}
	root := resolveNode(&node)
	if root == nil || root.Kind == 0 {
		return nil, &docerrors.ParseError{Path: source, Message: "empty document"}
	}
	if root.Kind != yaml.MappingNode {
		return nil, &docerrors.ParseError{
			Path:    source,
			Line:    root.Line,
			Column:  root.Column,
			Message: "document root must be a mapping",
		}
	}
	return root, nil
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

func newParseError(source string, err error) error {
	pe := &docerrors.ParseError{Path: source, Cause: err}
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

// errNotMapping is returned when a node that must be a mapping is not.
var errNotMapping = errors.New("expected a mapping")
