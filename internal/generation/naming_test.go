package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerFirst(t *testing.T) {
	tests := map[string]string{
		"MagickImage": "magickImage",
		"MagickNET":   "magickNET",
		"IOBuffer":    "ioBuffer",
		"NET":         "net",
		"X":           "x",
		"pixel":       "pixel",
		"":            "",
	}

	for name, expected := range tests {
		assert.Equal(t, expected, lowerFirst(name), name)
	}
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "NativeMagickImage", upperFirst("nativeMagickImage"))
	assert.Equal(t, "", upperFirst(""))
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"MagickImage":           "magick_image_gen.go",
		"MagickNET":             "magick_net_gen.go",
		"PixelCollection":       "pixel_collection_gen.go",
		"MagickImageCollection": "magick_image_collection_gen.go",
		"OpenCL":                "open_cl_gen.go",
		"Arm64":                 "arm64_gen.go",
	}

	for name, expected := range tests {
		assert.Equal(t, expected, fileName(name), name)
	}
}

func TestDerivedNames(t *testing.T) {
	assert.Equal(t, "nativeMagickImage", nativeTypeName("MagickImage"))
	assert.Equal(t, "pixelCollectionQuantum", quantumAliasName("PixelCollection"))
	assert.Equal(t, "libraryX64", libraryName("X64"))
}
