package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearAPIDOCSEnv clears all APIDOCS_MCP_* env vars to isolate tests from the ambient environment.
func clearAPIDOCSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APIDOCS_MCP_CACHE_ENABLED", "APIDOCS_MCP_CACHE_MAX_SIZE",
		"APIDOCS_MCP_CACHE_FILE_TTL", "APIDOCS_MCP_CACHE_CONTENT_TTL",
		"APIDOCS_MCP_CACHE_SWEEP_INTERVAL",
		"APIDOCS_MCP_LIST_LIMIT", "APIDOCS_MCP_MAX_LIMIT",
		"APIDOCS_MCP_MAX_INLINE_SIZE",
		"APIDOCS_MCP_BASE_URL", "APIDOCS_MCP_MANIFEST_TITLE", "APIDOCS_MCP_SCHEMAS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearAPIDOCSEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, "/api-reference", c.BaseURL)
	assert.Equal(t, "API Reference", c.ManifestTitle)
	assert.True(t, c.Schemas)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearAPIDOCSEnv(t)
	t.Setenv("APIDOCS_MCP_CACHE_ENABLED", "false")
	t.Setenv("APIDOCS_MCP_CACHE_MAX_SIZE", "50")
	t.Setenv("APIDOCS_MCP_CACHE_FILE_TTL", "30m")
	t.Setenv("APIDOCS_MCP_CACHE_CONTENT_TTL", "10m")
	t.Setenv("APIDOCS_MCP_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("APIDOCS_MCP_LIST_LIMIT", "20")
	t.Setenv("APIDOCS_MCP_MAX_INLINE_SIZE", "2048")
	t.Setenv("APIDOCS_MCP_BASE_URL", "/reference")
	t.Setenv("APIDOCS_MCP_SCHEMAS", "false")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, 20, c.ListLimit)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
	assert.Equal(t, "/reference", c.BaseURL)
	assert.False(t, c.Schemas)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearAPIDOCSEnv(t)
	t.Setenv("APIDOCS_MCP_CACHE_ENABLED", "notabool")
	t.Setenv("APIDOCS_MCP_CACHE_MAX_SIZE", "-5")
	t.Setenv("APIDOCS_MCP_CACHE_FILE_TTL", "forever")
	t.Setenv("APIDOCS_MCP_LIST_LIMIT", "0")
	t.Setenv("APIDOCS_MCP_MAX_INLINE_SIZE", "big")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.ListLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}
