package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantum(t *testing.T) {
	tests := []struct {
		value    string
		expected Quantum
	}{
		{"Q8", Q8},
		{"q16", Q16},
		{"Q16-HDRI", Q16HDRI},
		{"q16hdri", Q16HDRI},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			quantum, err := ParseQuantum(test.value)
			require.NoError(t, err)
			assert.Equal(t, test.expected, quantum)
		})
	}

	_, err := ParseQuantum("Q32")
	assert.ErrorIs(t, err, ErrUnknownQuantum)
}

func TestQuantumGoType(t *testing.T) {
	assert.Equal(t, "uint8", Q8.GoType())
	assert.Equal(t, "uint16", Q16.GoType())
	assert.Equal(t, "float32", Q16HDRI.GoType())
}

func TestParsePlatform(t *testing.T) {
	platform, err := ParsePlatform("anycpu")
	require.NoError(t, err)
	assert.Equal(t, AnyCPU, platform)

	platform, err = ParsePlatform("ARM64")
	require.NoError(t, err)
	assert.Equal(t, Arm64, platform)

	_, err = ParsePlatform("mips")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestArchitectures(t *testing.T) {
	assert.Equal(t, []string{"ARM64", "X64", "X86"}, AnyCPU.Architectures())
	assert.True(t, AnyCPU.IsMultiArch())

	for _, platform := range []Platform{X64, X86, Arm64} {
		assert.Len(t, platform.Architectures(), 1)
		assert.False(t, platform.IsMultiArch())
	}
	assert.Equal(t, []string{"X86"}, X86.Architectures())
}

func TestRuntimeIdentifiers(t *testing.T) {
	assert.Equal(t, []string{"win-x86"}, X86.RuntimeIdentifiers())
	assert.Contains(t, AnyCPU.RuntimeIdentifiers(), "linux-arm64")
	assert.Len(t, AnyCPU.RuntimeIdentifiers(), 7)
}

func TestLibraryName(t *testing.T) {
	assert.Equal(t, "Magick.Native-Q16-x64", LibraryName("Magick.Native", Q16, "X64"))
	assert.Equal(t, "Magick.Native-Q16-HDRI-arm64", LibraryName("Magick.Native", Q16HDRI, "ARM64"))
}
