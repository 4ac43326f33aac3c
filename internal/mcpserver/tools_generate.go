package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/colossus-credit/docs/acquire"
	"github.com/colossus-credit/docs/assemble"
	"github.com/colossus-credit/docs/generator"
)

type generateDocsInput struct {
	Spec          specInput `json:"spec"                     jsonschema:"The OpenAPI document to document"`
	OutputDir     string    `json:"output_dir"               jsonschema:"Directory to write the pages to"`
	CanonicalPath string    `json:"canonical_path,omitempty" jsonschema:"Also write the canonical JSON document here (file input only)"`
	BaseURL       string    `json:"base_url,omitempty"       jsonschema:"URL prefix of the pages (default /api-reference)"`
	NoSchemas     bool      `json:"no_schemas,omitempty"     jsonschema:"Skip the schema page and cross-links"`
	NoValidate    bool      `json:"no_validate,omitempty"    jsonschema:"Skip structural validation when writing canonical_path"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateDocsOutput struct {
	OutputDir     string              `json:"output_dir"`
	CanonicalPath string              `json:"canonical_path,omitempty"`
	Manifest      assemble.Manifest   `json:"manifest"`
	FileCount     int                 `json:"file_count"`
	Files         []generatedFileInfo `json:"files"`
}

func handleGenerateDocs(ctx context.Context, _ *mcp.CallToolRequest, input generateDocsInput) (*mcp.CallToolResult, generateDocsOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateDocsOutput{}, nil
	}
	if input.CanonicalPath != "" && input.Spec.File == "" {
		return errResult(fmt.Errorf("canonical_path requires file input")), generateDocsOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateDocsOutput{}, nil
	}

	if input.CanonicalPath != "" {
		acquired, err := acquire.AcquireWithOptions(ctx,
			acquire.WithSource(input.Spec.File),
			acquire.WithDestination(input.CanonicalPath),
			acquire.WithValidate(!input.NoValidate),
		)
		if err != nil {
			return errResult(err), generateDocsOutput{}, nil
		}
		doc = acquired.Document
	}

	baseURL := input.BaseURL
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	opts := assemble.DefaultOptions()
	opts.ManifestTitle = cfg.ManifestTitle
	opts.BaseURL = baseURL
	opts.Schemas = cfg.Schemas && !input.NoSchemas

	result, err := generator.GenerateWithOptions(
		generator.WithDocument(doc),
		generator.WithBaseURL(baseURL),
		generator.WithBeforeWrite(assemble.Hook(opts)),
	)
	if err != nil {
		return errResult(err), generateDocsOutput{}, nil
	}
	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(err), generateDocsOutput{}, nil
	}

	manifestFile := result.GetFile(assemble.ManifestFile)
	manifest, err := assemble.ParseManifest(manifestFile.Content)
	if err != nil {
		return errResult(err), generateDocsOutput{}, nil
	}

	out := generateDocsOutput{
		OutputDir:     input.OutputDir,
		CanonicalPath: input.CanonicalPath,
		Manifest:      manifest,
		FileCount:     len(result.Files),
		Files:         make([]generatedFileInfo, 0, len(result.Files)),
	}
	for _, f := range result.Files {
		out.Files = append(out.Files, generatedFileInfo{Name: f.Name, Size: len(f.Content)})
	}
	return nil, out, nil
}
