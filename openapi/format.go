package openapi

import (
	"bytes"
	"path/filepath"
	"strings"
)

// SourceFormat identifies the encoding of a source document.
type SourceFormat string

const (
	// SourceFormatJSON is the canonical structured encoding.
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML is the textual encoding converted into JSON.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown means the encoding could not be detected.
	SourceFormatUnknown SourceFormat = "unknown"
)

// DetectFormat detects the encoding from the path extension, falling back to
// the content.
func DetectFormat(path string, data []byte) SourceFormat {
	if f := detectFormatFromPath(path); f != SourceFormatUnknown {
		return f
	}
	return detectFormatFromContent(data)
}

func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// JSON objects start with '{'; anything else non-empty is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
