package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReader(t *testing.T) {
	reader, err := NewReader(filepath.Join("testdata", "catalog"))
	require.NoError(t, err)
	require.Equal(t, 3, reader.Catalog().Len())

	image, found := reader.TryGetClass("MagickImage")
	require.True(t, found)
	assert.True(t, image.HasInterface)
	require.NotNil(t, image.Constructor)
	assert.True(t, image.Constructor.Throws)
	assert.True(t, image.Constructor.Arguments[0].Type.HasInstance)

	require.Len(t, image.Properties, 2)
	assert.True(t, image.Properties[0].Type.IsNullable)
	assert.True(t, image.Properties[1].IsReadOnly)

	require.Len(t, image.Methods, 2)
	compare := image.Methods[0]
	assert.Equal(t, "IntPtr", compare.ReturnType.Name)
	assert.True(t, compare.Arguments[1].IsOut)

	readFile := image.Methods[1]
	assert.True(t, readFile.ReturnType.IsVoid)
	assert.True(t, readFile.Arguments[0].IsHidden)

	settings, found := reader.TryGetClass("MagickSettings")
	require.True(t, found)
	assert.True(t, settings.Properties[0].Type.IsEnum)

	magickNET, found := reader.TryGetClass("MagickNET")
	require.True(t, found)
	assert.True(t, magickNET.IsStatic)
}

func TestNewReaderEmptyDirectory(t *testing.T) {
	reader, err := NewReader(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, reader.Catalog().Len())
}

func TestNewReaderInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.json"), []byte("{"), 0644))

	_, err := NewReader(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken.json")
}

func TestReadClassDefaultsToVoid(t *testing.T) {
	class, err := ReadClass(strings.NewReader(`{"name": "MagickNET", "static": true, "methods": [{"name": "ResetRandomSeed"}]}`))
	require.NoError(t, err)
	require.Len(t, class.Methods, 1)
	assert.True(t, class.Methods[0].ReturnType.IsVoid)
	assert.Empty(t, class.Methods[0].Arguments)
}
