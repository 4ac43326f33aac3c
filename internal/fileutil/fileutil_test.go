package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "openapi.json")

	require.NoError(t, WriteAtomic(path, []byte("{}\n"), ReadableByAll))
	require.NoError(t, WriteAtomic(path, []byte("{\"a\":1}\n"), ReadableByAll))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, ReadableByAll, info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestSamePath(t *testing.T) {
	assert.True(t, SamePath("a/b.json", "./a/../a/b.json"))
	assert.False(t, SamePath("a.json", "b.json"))
}

func TestJoinWithin(t *testing.T) {
	dir := t.TempDir()

	got, err := JoinWithin(dir, "index.mdx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.mdx"), got)

	got, err = JoinWithin(dir, "sub/page.mdx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub", "page.mdx"), got)

	for _, bad := range []string{"", "../x.mdx", "a/../../x.mdx", "/etc/passwd"} {
		_, err := JoinWithin(dir, bad)
		assert.Error(t, err, bad)
	}
}
