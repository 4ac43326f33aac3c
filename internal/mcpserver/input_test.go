package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colossus-credit/docs/docerrors"
	"github.com/colossus-credit/docs/internal/testutil"
)

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: testutil.WriteTempFile(t, "openapi.yaml", testutil.BundlerYAML)}
	doc, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Bundler API", doc.Title)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.reset()
	input := specInput{Content: testutil.PetsYAML}
	doc, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
}

func TestSpecInput_ResolveNoneProvided(t *testing.T) {
	_, err := specInput{}.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveMultipleProvided(t *testing.T) {
	_, err := specInput{File: "foo.yaml", Content: "bar"}.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	specCache.reset()
	_, err := specInput{File: "/nonexistent/path.yaml"}.resolve()
	assert.ErrorIs(t, err, docerrors.ErrSource)
}

func TestSpecInput_ResolveMalformed(t *testing.T) {
	specCache.reset()
	_, err := specInput{Content: testutil.MalformedYAML}.resolve()
	assert.ErrorIs(t, err, docerrors.ErrParse)
	assert.Equal(t, 0, specCache.size(), "failures are not cached")
}

func TestSpecCache_HitOnSameFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: testutil.WriteTempFile(t, "openapi.yaml", testutil.PetsYAML)}

	doc1, err := input.resolve()
	require.NoError(t, err)
	doc2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, doc1, doc2)
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	specCache.reset()
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testutil.PetsYAML), 0o644))
	input := specInput{File: path}

	doc1, err := input.resolve()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(testutil.BundlerYAML), 0o644))
	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	doc2, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, doc1, doc2)
	assert.Equal(t, "Bundler API", doc2.Title)
}

func TestSpecCache_ContentHash(t *testing.T) {
	specCache.reset()
	input := specInput{Content: testutil.PetsYAML}

	doc1, err := input.resolve()
	require.NoError(t, err)
	doc2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, doc1, doc2)
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.reset()

	var firstKey string
	for i := range 11 {
		content := `openapi: "3.0.0"
info:
  title: "Spec ` + string(rune('A'+i)) + `"
  version: "1.0"
paths: {}
`
		if i == 0 {
			firstKey = makeCacheKey(specInput{Content: content})
		}
		_, err := specInput{Content: content}.resolve()
		require.NoError(t, err)
	}

	assert.Equal(t, 10, specCache.size())
	assert.Nil(t, specCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestSpecCache_Sweep(t *testing.T) {
	specCache.reset()
	doc, err := specInput{Content: testutil.PetsYAML}.resolve()
	require.NoError(t, err)

	specCache.putWithTTL("expired", doc, -time.Second)
	specCache.sweep()

	assert.Nil(t, specCache.get("expired"))
	assert.Equal(t, 1, specCache.size())
}
