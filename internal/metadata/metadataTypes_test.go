package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTypeBuiltIn(t *testing.T) {
	tests := []struct {
		name        string
		nativeName  string
		managedName string
		cast        string
	}{
		{"bool", "int32", "bool", ""},
		{"double", "float64", "float64", ""},
		{"int", "int32", "int", "int32"},
		{"uint", "uint32", "uint", "uint32"},
		{"size_t", "uintptr", "uint", "uintptr"},
		{"ssize_t", "int", "int", ""},
		{"IntPtr", "uintptr", "uintptr", ""},
		{"string", "uintptr", "string", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			typ := NewType(test.name)
			assert.True(t, typ.IsBuiltIn)
			assert.Equal(t, test.name, typ.Name)
			assert.Equal(t, test.nativeName, typ.NativeName)
			assert.Equal(t, test.managedName, typ.ManagedName)
			assert.Equal(t, test.cast, typ.NativeTypeCast)
		})
	}
}

func TestNewTypeFlags(t *testing.T) {
	assert.True(t, NewType("void").IsVoid)
	assert.True(t, NewType("bool").IsBool)
	assert.True(t, NewType("string").IsString)

	quantum := NewType("QuantumType[]")
	assert.True(t, quantum.IsFixed)
	assert.True(t, quantum.IsQuantumType)
	assert.Equal(t, "QuantumType", quantum.FixedName)

	bytes := NewType("byte[]")
	assert.True(t, bytes.IsFixed)
	assert.False(t, bytes.IsQuantumType)
	assert.Equal(t, "byte", bytes.FixedName)
}

func TestNewTypeNullable(t *testing.T) {
	str := NewType("string?")
	assert.True(t, str.IsString)
	assert.True(t, str.IsNullable)
	assert.Equal(t, "string", str.Name)

	color := NewType("MagickColor?")
	assert.True(t, color.IsNullable)
	assert.False(t, color.IsBuiltIn)
	assert.Equal(t, "MagickColor", color.Name)
}

func TestNewTypeDelegate(t *testing.T) {
	delegate := NewType("ProgressDelegate")
	assert.True(t, delegate.IsDelegate)
	assert.True(t, delegate.IsNullable)
	assert.Equal(t, "uintptr", delegate.NativeName)
	assert.Equal(t, "ProgressDelegate", delegate.ManagedName)

	assert.False(t, NewType("Delegate").IsDelegate)
}

func TestNewTypeUnbound(t *testing.T) {
	typ := NewType("ColorSpace")
	assert.False(t, typ.IsBuiltIn)
	assert.False(t, typ.IsEnum)
	assert.False(t, typ.HasInstance)
	assert.Equal(t, "uintptr", typ.NativeName)
}
