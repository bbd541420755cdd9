package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicOnError(t *testing.T) {
	assert.NotPanics(t, func() { PanicOnError(nil) })
	assert.Panics(t, func() { PanicOnError(os.ErrNotExist) })
}

func TestReadClassList(t *testing.T) {
	names, err := ReadClassList(strings.NewReader("MagickImage\n\n# settings\n  DrawingSettings  \nMagickNET"))
	require.NoError(t, err)
	assert.Equal(t, []string{"MagickImage", "DrawingSettings", "MagickNET"}, names)
}

func TestRemoveStaleFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"magick_image_gen.go", "pixel_collection_gen.go", "magick_image.go", "native_library_gen.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("package magick\n"), 0644))
	}

	removed, err := RemoveStaleFiles(dir, []string{"magick_image_gen.go", "native_library_gen.go"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "pixel_collection_gen.go")}, removed)

	assert.FileExists(t, filepath.Join(dir, "magick_image.go"))
	assert.FileExists(t, filepath.Join(dir, "magick_image_gen.go"))
	assert.NoFileExists(t, filepath.Join(dir, "pixel_collection_gen.go"))
}

func TestRemoveStaleFilesMissingDirectory(t *testing.T) {
	removed, err := RemoveStaleFiles(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)
	assert.Empty(t, removed)
}
