package acquire

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colossus-credit/docs/docerrors"
	"github.com/colossus-credit/docs/internal/testutil"
	"github.com/colossus-credit/docs/openapi"
)

func TestAcquire_YAMLSource(t *testing.T) {
	source := testutil.WriteTempFile(t, "openapi.yaml", testutil.PetsYAML)
	dest := filepath.Join(t.TempDir(), "public", "openapi.json")

	result, err := New().Acquire(context.Background(), source, dest)
	require.NoError(t, err)

	assert.Equal(t, source, result.SourcePath)
	assert.Equal(t, dest, result.DestinationPath)
	assert.Equal(t, openapi.SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, len(testutil.PetsYAML), result.Bytes)
	require.NotNil(t, result.Document)
	assert.Len(t, result.Document.Operations, 1)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, result.Canonical, written)
	assert.True(t, json.Valid(written))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestAcquire_JSONSourceInPlace(t *testing.T) {
	source := testutil.WriteTempFile(t, "openapi.json",
		`{"openapi":"3.0.3","info":{"title":"Pets","version":"1.0"},"paths":{}}`)

	result, err := New().Acquire(context.Background(), source, source)
	require.NoError(t, err)
	assert.Equal(t, openapi.SourceFormatJSON, result.SourceFormat)

	written, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"openapi\": \"3.0.3\",\n  \"info\": {\n    \"title\": \"Pets\",\n    \"version\": \"1.0\"\n  },\n  \"paths\": {}\n}\n", string(written))
}

func TestAcquire_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing source", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "openapi.json")
		_, err := New().Acquire(ctx, filepath.Join(t.TempDir(), "absent.yaml"), dest)
		assert.ErrorIs(t, err, docerrors.ErrSource)
		assert.NoFileExists(t, dest)
	})

	t.Run("malformed source", func(t *testing.T) {
		source := testutil.WriteTempFile(t, "openapi.yaml", testutil.MalformedYAML)
		dest := filepath.Join(t.TempDir(), "openapi.json")
		_, err := New().Acquire(ctx, source, dest)
		assert.ErrorIs(t, err, docerrors.ErrParse)
		assert.NoFileExists(t, dest)
	})

	t.Run("invalid document", func(t *testing.T) {
		source := testutil.WriteTempFile(t, "openapi.yaml", testutil.UntitledYAML)
		dest := filepath.Join(t.TempDir(), "openapi.json")
		_, err := New().Acquire(ctx, source, dest)
		assert.ErrorIs(t, err, docerrors.ErrValidation)
		assert.NoFileExists(t, dest)
	})

	t.Run("validation disabled", func(t *testing.T) {
		source := testutil.WriteTempFile(t, "openapi.yaml", testutil.UntitledYAML)
		dest := filepath.Join(t.TempDir(), "openapi.json")
		_, err := AcquireWithOptions(ctx,
			WithSource(source),
			WithDestination(dest),
			WithValidate(false),
		)
		require.NoError(t, err)
		assert.FileExists(t, dest)
	})

	t.Run("yaml source overwritten by destination", func(t *testing.T) {
		source := testutil.WriteTempFile(t, "openapi.yaml", testutil.PetsYAML)
		_, err := New().Acquire(ctx, source, source)
		assert.ErrorIs(t, err, docerrors.ErrConfig)

		data, readErr := os.ReadFile(source)
		require.NoError(t, readErr)
		assert.Equal(t, testutil.PetsYAML, string(data))
	})

	t.Run("empty paths", func(t *testing.T) {
		_, err := AcquireWithOptions(ctx, WithDestination("x.json"))
		assert.ErrorIs(t, err, docerrors.ErrConfig)
		_, err = AcquireWithOptions(ctx, WithSource("x.yaml"))
		assert.ErrorIs(t, err, docerrors.ErrConfig)
	})
}

func TestAcquire_SwaggerSkipsValidation(t *testing.T) {
	source := testutil.WriteTempFile(t, "swagger.yaml", testutil.SwaggerYAML)
	dest := filepath.Join(t.TempDir(), "openapi.json")

	result, err := New().Acquire(context.Background(), source, dest)
	require.NoError(t, err)
	assert.True(t, result.Document.IsOAS2())
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("valid document", func(t *testing.T) {
		source := testutil.WriteTempFile(t, "openapi.yaml", testutil.PetsYAML)
		result, err := New().Check(ctx, source)
		require.NoError(t, err)
		assert.Empty(t, result.DestinationPath)
		assert.Equal(t, "Pets", result.Document.Title)
		assert.True(t, json.Valid(result.Canonical))
	})

	t.Run("invalid document", func(t *testing.T) {
		source := testutil.WriteTempFile(t, "openapi.yaml", testutil.UntitledYAML)
		_, err := New().Check(ctx, source)
		assert.ErrorIs(t, err, docerrors.ErrValidation)

		a := New()
		a.Validate = false
		_, err = a.Check(ctx, source)
		assert.NoError(t, err)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := New().Check(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, docerrors.ErrSource)
	})
}

func TestAcquire_OAS31SkipsValidation(t *testing.T) {
	source := testutil.WriteTempFile(t, "openapi.yaml", testutil.OAS31YAML)
	dest := filepath.Join(t.TempDir(), "openapi.json")

	result, err := New().Acquire(context.Background(), source, dest)
	require.NoError(t, err)
	assert.True(t, result.Document.IsOAS31())
	assert.FileExists(t, dest)

	pet := result.Document.Schema("Pet")
	require.NotNil(t, pet)
	assert.Equal(t, "string", pet.Properties[0].ResolvedType())
	assert.Equal(t, "Owner", pet.Properties[1].ResolvedType())
}
