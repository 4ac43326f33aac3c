package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colossus-credit/docs/docerrors"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content", "docs")
	result := &Result{Files: []*File{
		{Name: "index.mdx", Content: []byte("# Index\n")},
		{Name: "nested/page.mdx", Content: []byte("page\n")},
	}}

	require.NoError(t, result.WriteFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "index.mdx"))
	require.NoError(t, err)
	assert.Equal(t, "# Index\n", string(data))
	assert.FileExists(t, filepath.Join(dir, "nested", "page.mdx"))
}

func TestWriteFiles_RejectsEscapingNames(t *testing.T) {
	dir := t.TempDir()
	result := &Result{Files: []*File{{Name: "../outside.mdx", Content: []byte("x")}}}

	err := result.WriteFiles(filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrWrite)
	assert.NoFileExists(t, filepath.Join(dir, "outside.mdx"))
}
