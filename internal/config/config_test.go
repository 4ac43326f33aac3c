package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colossus-credit/docs/docerrors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./openapi.yaml", cfg.Spec.Source)
	assert.Equal(t, "./openapi.json", cfg.Spec.Destination)
	assert.True(t, cfg.Spec.Validate)
	assert.Equal(t, "./content/docs/api-reference", cfg.Docs.Output)
	assert.Equal(t, "/api-reference", cfg.Docs.BaseURL)
	assert.Equal(t, "API Reference", cfg.Docs.ManifestTitle)
	assert.True(t, cfg.Docs.Schemas)
	assert.Equal(t, "Colossus", cfg.Site.Title)
	assert.Equal(t, "/colossus.jpg", cfg.Site.Logo)
	assert.Equal(t, ":3000", cfg.Site.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	t.Run("overlays defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(`
spec:
  source: api/openapi.yaml
  validate: false
docs:
  schemas: false
log:
  level: debug
`))
		require.NoError(t, err)
		assert.Equal(t, "api/openapi.yaml", cfg.Spec.Source)
		assert.Equal(t, "./openapi.json", cfg.Spec.Destination)
		assert.False(t, cfg.Spec.Validate)
		assert.False(t, cfg.Docs.Schemas)
		assert.Equal(t, "/api-reference", cfg.Docs.BaseURL)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "unknown top-level key", input: "sources: x\n", wantMsg: "sources"},
		{name: "unknown nested key", input: "site:\n  colour: red\n", wantMsg: "colour"},
		{name: "not a mapping", input: "- a\n- b\n", wantMsg: "mapping"},
		{name: "wrong type", input: "spec:\n  validate: maybe\n", wantMsg: "invalid value"},
		{name: "malformed", input: "spec: [\n", wantMsg: "invalid YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, docerrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docs.yaml")
		require.NoError(t, os.WriteFile(path, []byte("site:\n  addr: \":8080\"\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Site.Addr)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, docerrors.ErrConfig)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docs.yaml")
		require.NoError(t, os.WriteFile(path, []byte("docs:\n  output: from-file\n"), 0o600))
		t.Setenv("APIDOCS_OUTPUT", "from-env")
		t.Setenv("APIDOCS_SCHEMAS", "false")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Docs.Output)
		assert.False(t, cfg.Docs.Schemas)
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"APIDOCS_SOURCE":    "spec.yaml",
		"APIDOCS_LOG_LEVEL": "warn",
		"APIDOCS_ADDR":      "",
		"APIDOCS_VALIDATE":  "0",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, "spec.yaml", cfg.Spec.Source)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":3000", cfg.Site.Addr, "empty values keep the current setting")
	assert.False(t, cfg.Spec.Validate)

	env["APIDOCS_SCHEMAS"] = "sometimes"
	err := Default().ApplyEnv(lookup)
	assert.ErrorIs(t, err, docerrors.ErrConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		option string
	}{
		{name: "empty source", mutate: func(c *Config) { c.Spec.Source = "" }, option: "spec.source"},
		{name: "empty destination", mutate: func(c *Config) { c.Spec.Destination = " " }, option: "spec.destination"},
		{name: "empty output", mutate: func(c *Config) { c.Docs.Output = "" }, option: "docs.output"},
		{name: "relative base url", mutate: func(c *Config) { c.Docs.BaseURL = "api" }, option: "docs.base_url"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, option: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, option: "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			var cfgErr *docerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}
