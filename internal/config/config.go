// Package config loads the apidocs configuration.
//
// Values are layered: [Default], then an optional YAML file, then APIDOCS_*
// environment variables. Command-line flags are applied on top by the CLI.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/colossus-credit/docs/docerrors"
	"github.com/colossus-credit/docs/logging"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "apidocs.yaml"

// Config is the complete apidocs configuration.
type Config struct {
	Spec SpecConfig `yaml:"spec"`
	Docs DocsConfig `yaml:"docs"`
	Site SiteConfig `yaml:"site"`
	Log  LogConfig  `yaml:"log"`
}

// SpecConfig locates the OpenAPI document.
type SpecConfig struct {
	// Source is the document as authored (YAML or JSON)
	Source string `yaml:"source"`
	// Destination receives the canonical JSON encoding
	Destination string `yaml:"destination"`
	// Validate runs structural validation after conversion
	Validate bool `yaml:"validate"`
}

// DocsConfig controls page generation.
type DocsConfig struct {
	Output             string `yaml:"output"`
	BaseURL            string `yaml:"base_url"`
	ManifestTitle      string `yaml:"manifest_title"`
	IndexTitle         string `yaml:"index_title"`
	IndexDescription   string `yaml:"index_description"`
	SchemaTitle        string `yaml:"schema_title"`
	Schemas            bool   `yaml:"schemas"`
	IncludeDescription bool   `yaml:"include_description"`
}

// SiteConfig controls the documentation site.
type SiteConfig struct {
	Title     string `yaml:"title"`
	Logo      string `yaml:"logo"`
	Addr      string `yaml:"addr"`
	PublicDir string `yaml:"public_dir"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the configuration of the Colossus documentation site.
func Default() *Config {
	return &Config{
		Spec: SpecConfig{
			Source:      "./openapi.yaml",
			Destination: "./openapi.json",
			Validate:    true,
		},
		Docs: DocsConfig{
			Output:             "./content/docs/api-reference",
			BaseURL:            "/api-reference",
			ManifestTitle:      "API Reference",
			IndexTitle:         "Overview",
			IndexDescription:   "Every operation of the API.",
			SchemaTitle:        "Schemas",
			Schemas:            true,
			IncludeDescription: true,
		},
		Site: SiteConfig{
			Title:     "Colossus",
			Logo:      "/colossus.jpg",
			Addr:      ":3000",
			PublicDir: "./public",
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load returns the defaults overlaid with the file at path and the
// environment. An empty path loads DefaultFile when it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data, path); err != nil {
			return nil, err
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, &docerrors.ConfigError{Option: "config", Value: path, Message: "cannot read file", Cause: err}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse overlays YAML data onto the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data, ""); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, source string) error {
	var root yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &docerrors.ConfigError{Option: "config", Value: source, Message: "invalid YAML", Cause: err}
	}
	if len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return &docerrors.ConfigError{Option: "config", Value: source, Message: "top level must be a mapping"}
	}

	// Strict decoding rejects keys with no matching field at any depth.
	strict := yaml.NewDecoder(bytes.NewReader(data))
	strict.KnownFields(true)
	if err := strict.Decode(c); err != nil {
		return &docerrors.ConfigError{Option: "config", Value: source, Message: "invalid value", Cause: err}
	}
	return nil
}

// ApplyEnv overrides fields from APIDOCS_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"APIDOCS_SOURCE", &c.Spec.Source},
		{"APIDOCS_DESTINATION", &c.Spec.Destination},
		{"APIDOCS_OUTPUT", &c.Docs.Output},
		{"APIDOCS_BASE_URL", &c.Docs.BaseURL},
		{"APIDOCS_MANIFEST_TITLE", &c.Docs.ManifestTitle},
		{"APIDOCS_SITE_TITLE", &c.Site.Title},
		{"APIDOCS_SITE_LOGO", &c.Site.Logo},
		{"APIDOCS_ADDR", &c.Site.Addr},
		{"APIDOCS_PUBLIC_DIR", &c.Site.PublicDir},
		{"APIDOCS_LOG_LEVEL", &c.Log.Level},
		{"APIDOCS_LOG_FORMAT", &c.Log.Format},
		{"APIDOCS_LOG_FILE", &c.Log.File},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"APIDOCS_VALIDATE", &c.Spec.Validate},
		{"APIDOCS_SCHEMAS", &c.Docs.Schemas},
		{"APIDOCS_INCLUDE_DESCRIPTION", &c.Docs.IncludeDescription},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return &docerrors.ConfigError{Option: b.key, Value: v, Message: "must be a boolean", Cause: err}
		}
		*b.dst = parsed
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	required := []struct {
		option, value string
	}{
		{"spec.source", c.Spec.Source},
		{"spec.destination", c.Spec.Destination},
		{"docs.output", c.Docs.Output},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &docerrors.ConfigError{Option: r.option, Message: "must not be empty"}
		}
	}
	if !strings.HasPrefix(c.Docs.BaseURL, "/") {
		return &docerrors.ConfigError{Option: "docs.base_url", Value: c.Docs.BaseURL, Message: "must start with /"}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return &docerrors.ConfigError{Option: "log.format", Value: c.Log.Format, Message: "must be one of: console, json"}
	}
	return nil
}
