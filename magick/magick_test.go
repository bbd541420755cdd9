package magick

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magickgen/pkg/native"
)

// requireNative skips the test when the Magick.Native build of the running
// architecture cannot be loaded.
func requireNative(t *testing.T) {
	t.Helper()

	library, err := native.Current()
	if err != nil {
		t.Skip(err)
	}
	if _, err := library.Load(); err != nil {
		t.Skipf("set %s to run: %v", native.SearchPathVariable, err)
	}
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))
	value := optional("png")
	require.NotNil(t, value)
	assert.Equal(t, "png", *value)
}

func TestNewDrawingSettings(t *testing.T) {
	settings := NewDrawingSettings()
	assert.Equal(t, 12.0, settings.FontPointsize)
	assert.Equal(t, 1.0, settings.StrokeWidth)
	assert.True(t, settings.TextAntiAlias)
	assert.Nil(t, settings.FillColor)
	assert.Nil(t, settings.StrokeColor)
}

func TestLimitMemoryRejectsPercentage(t *testing.T) {
	for _, percentage := range []float64{0, -1, 100.5} {
		assert.ErrorIs(t, ResourceLimits.LimitMemory(percentage), ErrInvalidPercentage)
	}
}

func TestNilHandles(t *testing.T) {
	var color *MagickColor
	var settings *MagickSettings
	var image *MagickImage
	assert.Zero(t, color.Instance())
	assert.Zero(t, settings.Instance())
	assert.Zero(t, image.Instance())
	assert.Nil(t, newMagickColor(0))
}

func TestVersion(t *testing.T) {
	requireNative(t)

	assert.Contains(t, Version(), "ImageMagick")
	assert.NotEmpty(t, Features())
}

func TestResourceLimitsHeight(t *testing.T) {
	requireNative(t)

	height := ResourceLimits.Height()
	t.Cleanup(func() { ResourceLimits.SetHeight(height) })

	ResourceLimits.SetHeight(200000)
	assert.Equal(t, uint64(200000), ResourceLimits.Height())
}

func TestLimitMemory(t *testing.T) {
	requireNative(t)

	memory := ResourceLimits.Memory()
	t.Cleanup(func() { ResourceLimits.SetMemory(memory) })

	require.NoError(t, ResourceLimits.LimitMemory(50))
	assert.InDelta(t, float64(memory)/2, float64(ResourceLimits.Memory()), 1)
}

func TestSupportedFormats(t *testing.T) {
	requireNative(t)

	formats, err := SupportedFormats()
	require.NoError(t, err)
	require.NotEmpty(t, formats)

	var png *MagickFormatInfo
	for i := range formats {
		if formats[i].Format == "PNG" {
			png = &formats[i]
		}
	}
	require.NotNil(t, png)
	assert.True(t, png.IsReadable)
	assert.True(t, png.IsWritable)
	assert.Equal(t, "image/png", png.MimeType)
}

func TestReadPseudoImage(t *testing.T) {
	requireNative(t)

	image, err := ReadMagickImage("xc:red")
	require.NoError(t, err)
	t.Cleanup(image.Dispose)

	assert.Equal(t, uint(1), image.Width())
	assert.Equal(t, uint(1), image.Height())

	color, err := image.GetPixelColor(0, 0)
	require.NoError(t, err)
	assert.Equal(t, magickImageQuantum(65535), color.Red())
	assert.Zero(t, color.Green())
	assert.Zero(t, color.Blue())
}

func TestReadMissingFile(t *testing.T) {
	requireNative(t)

	_, err := ReadMagickImage(filepath.Join(t.TempDir(), "missing.png"))
	var magickErr *native.MagickError
	assert.ErrorAs(t, err, &magickErr)
}

func TestWriteAndReadBlob(t *testing.T) {
	requireNative(t)

	image, err := ReadMagickImage("xc:blue")
	require.NoError(t, err)
	t.Cleanup(image.Dispose)
	require.NoError(t, image.Resize("4x3!"))

	path := filepath.Join(t.TempDir(), "blue.png")
	require.NoError(t, image.Write(path))

	copied, err := ReadMagickImage(path)
	require.NoError(t, err)
	t.Cleanup(copied.Dispose)
	assert.Equal(t, "PNG", copied.Format())
	assert.Equal(t, uint(4), copied.Width())
	assert.Equal(t, uint(3), copied.Height())

	distortion, err := image.Compare(copied, RootMeanSquaredErrorMetric, CompositeChannels)
	require.NoError(t, err)
	assert.Zero(t, distortion)
}

func TestReadBlobEmpty(t *testing.T) {
	requireNative(t)

	image, err := NewMagickImage()
	require.NoError(t, err)
	t.Cleanup(image.Dispose)

	assert.ErrorIs(t, image.ReadBlob(nil), ErrEmptyBlob)
}

func TestAttributes(t *testing.T) {
	requireNative(t)

	image, err := ReadMagickImage("xc:white")
	require.NoError(t, err)
	t.Cleanup(image.Dispose)

	require.NoError(t, image.SetAttribute("comment", "generated"))
	value, err := image.Attribute("comment")
	require.NoError(t, err)
	assert.Equal(t, "generated", value)

	require.NoError(t, image.RemoveAttribute("comment"))
	value, err = image.Attribute("comment")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestImagePerceptualHash(t *testing.T) {
	requireNative(t)

	image, err := ReadMagickImage("gradient:red-blue")
	require.NoError(t, err)
	t.Cleanup(image.Dispose)
	require.NoError(t, image.Resize("64x64!"))

	hash, err := image.PerceptualHash()
	require.NoError(t, err)
	require.NotNil(t, hash)

	parsed, err := ParsePerceptualHash(hash.String())
	require.NoError(t, err)
	assert.InDelta(t, 0, hash.SumSquaredDistance(parsed), 1e-3)
}
