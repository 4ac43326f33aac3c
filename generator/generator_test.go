package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colossus-credit/docs/internal/testutil"
	"github.com/colossus-credit/docs/openapi"
)

func parseBundler(t *testing.T) *openapi.Document {
	t.Helper()
	doc, err := openapi.Parse([]byte(testutil.BundlerYAML))
	require.NoError(t, err)
	return doc
}

func TestGenerate_Entries(t *testing.T) {
	result, err := New().Generate(parseBundler(t))
	require.NoError(t, err)

	var ids []string
	for _, e := range result.Entries {
		ids = append(ids, e.PageID)
	}
	assert.Equal(t, []string{
		"list-bundles",
		"create-bundle",
		"get-bundle",
		"replace-bundle",
		"update-bundle",
		"delete-bundle",
		"head-health",
	}, ids)

	require.Len(t, result.Files, 7)
	assert.Equal(t, "list-bundles.mdx", result.Files[0].Name)
	assert.Equal(t, DefaultBaseURL, result.BaseURL)

	head := result.Entries[6]
	assert.Equal(t, "HEAD", head.Method)
	assert.Equal(t, "HEAD /health", head.Title)
	assert.Len(t, result.PageFiles(), 7)
}

func TestGenerate_Page(t *testing.T) {
	result, err := New().Generate(parseBundler(t))
	require.NoError(t, err)

	page := string(result.GetFile("create-bundle.mdx").Content)

	assert.True(t, strings.HasPrefix(page, "---\ntitle: \"Create bundle\"\n"), page)
	assert.Contains(t, page, "description: \"Creates a bundle from \\\"raw\\\" messages.\"\n")
	assert.Contains(t, page, "_openapi:\n  method: POST\n  route: \"/bundles\"\n---\n")
	assert.Contains(t, page, "Returns the stored `Bundle` schema.")
	assert.Contains(t, page, "## Request body\n\nAccepts the `BundleRequest` schema (`application/json`).")
	assert.Contains(t, page, "The request body is required.")
	assert.Contains(t, page, "| 201 | Created | `Bundle` schema |\n")
	assert.Contains(t, page, "| 400 | Invalid request | `Error` schema |\n")
	assert.NotContains(t, page, "## Parameters")
	assert.True(t, strings.HasSuffix(page, "|\n"))

	list := string(result.GetFile("list-bundles.mdx").Content)
	assert.Contains(t, list, "| limit | query | `integer` | No | Max results\\|page size |\n")
	assert.Contains(t, list, "| 200 | OK | `Bundle`[] |\n")

	get := string(result.GetFile("get-bundle.mdx").Content)
	assert.Contains(t, get, "| bundleId | path | `string` | Yes | Bundle identifier |\n")
}

func TestGenerate_WithoutDescription(t *testing.T) {
	g := New()
	g.IncludeDescription = false

	result, err := g.Generate(parseBundler(t))
	require.NoError(t, err)

	page := string(result.GetFile("create-bundle.mdx").Content)
	assert.NotContains(t, page, "Returns the stored")
	assert.Contains(t, page, "description: \"Creates a bundle")
}

func TestGenerate_DuplicateIDs(t *testing.T) {
	doc := &openapi.Document{Operations: []*openapi.Operation{
		{Method: "GET", Path: "/a", OperationID: "listPets"},
		{Method: "GET", Path: "/b", OperationID: "list_pets"},
		{Method: "GET", Path: "/c", OperationID: "ListPets"},
	}}

	result, err := New().Generate(doc)
	require.NoError(t, err)

	assert.Equal(t, "list-pets", result.Entries[0].PageID)
	assert.Equal(t, "list-pets-2", result.Entries[1].PageID)
	assert.Equal(t, "list-pets-3", result.Entries[2].PageID)
}

func TestGenerate_NonASCIIOperationIDs(t *testing.T) {
	doc := &openapi.Document{Operations: []*openapi.Operation{
		{Method: "POST", Path: "/lots", OperationID: "créerLot"},
		{Method: "GET", Path: "/lots/{idLot}", OperationID: "ロット取得"},
	}}

	result, err := New().Generate(doc)
	require.NoError(t, err)

	assert.Equal(t, "creer-lot", result.Entries[0].PageID)
	assert.Equal(t, "get-lots-id-lot", result.Entries[1].PageID)
	assert.NotNil(t, result.GetFile("creer-lot.mdx"))
}

func TestGenerate_Deprecated(t *testing.T) {
	doc := &openapi.Document{Operations: []*openapi.Operation{
		{Method: "DELETE", Path: "/old", Deprecated: true},
	}}

	result, err := New().Generate(doc)
	require.NoError(t, err)
	assert.Contains(t, string(result.Files[0].Content), "> **Deprecated.**")
}

func TestGenerate_Hook(t *testing.T) {
	var seen int
	g := New()
	g.BeforeWrite = func(doc *openapi.Document, r *Result) error {
		seen = len(r.Entries)
		r.Files = append(r.Files, &File{Name: "extra.json", Content: []byte("{}")})
		return nil
	}

	result, err := g.Generate(parseBundler(t))
	require.NoError(t, err)
	assert.Equal(t, 7, seen)
	assert.NotNil(t, result.GetFile("extra.json"))
	assert.Len(t, result.PageFiles(), 7, "hook files are not pages")

	t.Run("hook error aborts", func(t *testing.T) {
		boom := errors.New("boom")
		g.BeforeWrite = func(*openapi.Document, *Result) error { return boom }
		_, err := g.Generate(parseBundler(t))
		assert.ErrorIs(t, err, boom)
	})
}

func TestOperationTitle(t *testing.T) {
	tests := []struct {
		name string
		op   openapi.Operation
		want string
	}{
		{"summary", openapi.Operation{Summary: " List pets ", OperationID: "x"}, "List pets"},
		{"operation id", openapi.Operation{OperationID: "getUserByID"}, "Get User By ID"},
		{"method and path", openapi.Operation{Method: "PUT", Path: "/pets/{id}"}, "PUT /pets/{id}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OperationTitle(&tt.op))
		})
	}
}

func TestGenerateWithOptions(t *testing.T) {
	t.Run("requires a document", func(t *testing.T) {
		_, err := GenerateWithOptions()
		assert.Error(t, err)
	})

	t.Run("rejects relative base URL", func(t *testing.T) {
		_, err := GenerateWithOptions(WithDocument(parseBundler(t)), WithBaseURL("docs"))
		assert.Error(t, err)
	})

	t.Run("applies options", func(t *testing.T) {
		called := false
		result, err := GenerateWithOptions(
			WithDocument(parseBundler(t)),
			WithBaseURL("/reference/"),
			WithIncludeDescription(false),
			WithBeforeWrite(func(*openapi.Document, *Result) error { called = true; return nil }),
			WithLogger(nil),
		)
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "/reference", result.BaseURL)
	})

	t.Run("nil document", func(t *testing.T) {
		_, err := New().Generate(nil)
		assert.Error(t, err)
	})
}
