package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClasses() []MagickClass {
	return []MagickClass{
		{
			Name:         "MagickImage",
			HasInterface: true,
			Constructor: &MagickConstructor{
				Arguments: []MagickArgument{NewArgument("settings", "MagickSettings")},
				Throws:    true,
			},
			Properties: []MagickProperty{
				{Name: "ColorSpace", Type: NewType("ColorSpace")},
				{Name: "Width", Type: NewType("size_t"), IsReadOnly: true},
			},
			Methods: []MagickMethod{
				{
					Name:       "GetPixelColor",
					ReturnType: NewType("MagickColor"),
					Arguments:  []MagickArgument{NewArgument("x", "ssize_t"), NewArgument("y", "ssize_t")},
					Throws:     true,
				},
			},
		},
		{Name: "MagickSettings", Constructor: &MagickConstructor{}},
		{Name: "MagickNET", IsStatic: true},
		{Name: "MagickColor", IsQuantumType: true, HasInterface: true},
		{Name: "DrawingSettings", IsDynamic: true},
	}
}

func TestNewCatalogSortsClasses(t *testing.T) {
	catalog := NewCatalog(testClasses())

	names := make([]string, 0, catalog.Len())
	for _, class := range catalog.Classes() {
		names = append(names, class.Name)
	}
	assert.Equal(t, []string{"DrawingSettings", "MagickColor", "MagickImage", "MagickNET", "MagickSettings"}, names)
}

func TestNewCatalogLastDuplicateWins(t *testing.T) {
	catalog := NewCatalog([]MagickClass{
		{Name: "MagickImage"},
		{Name: "MagickImage", HasInterface: true},
	})

	require.Equal(t, 1, catalog.Len())
	assert.True(t, catalog.HasInterface("MagickImage"))
}

func TestCatalogQueries(t *testing.T) {
	catalog := NewCatalog(testClasses())

	assert.True(t, catalog.HasInterface("MagickImage"))
	assert.False(t, catalog.HasInterface("MagickSettings"))
	assert.True(t, catalog.IsDynamic("DrawingSettings"))
	assert.True(t, catalog.IsQuantumType("MagickColor"))
	assert.True(t, catalog.HasInstance("MagickSettings"))
	assert.False(t, catalog.HasInstance("MagickNET"))
	assert.False(t, catalog.HasInstance("ColorSpace"))

	_, found := catalog.Class("Missing")
	assert.False(t, found)
}

func TestCatalogBindsMemberTypes(t *testing.T) {
	catalog := NewCatalog(testClasses())
	image, found := catalog.Class("MagickImage")
	require.True(t, found)

	settings := image.Constructor.Arguments[0].Type
	assert.True(t, settings.HasInstance)
	assert.False(t, settings.IsEnum)

	colorSpace := image.Properties[0].Type
	assert.True(t, colorSpace.IsEnum)
	assert.Equal(t, "uintptr", colorSpace.NativeTypeCast)

	width := image.Properties[1].Type
	assert.False(t, width.IsEnum)
	assert.Equal(t, "uintptr", width.NativeTypeCast)

	assert.True(t, image.Methods[0].ReturnType.HasInstance)
}

func TestBindIsIdempotent(t *testing.T) {
	catalog := NewCatalog(testClasses())

	once := catalog.Bind(NewType("MagickSettings"))
	twice := catalog.Bind(once)
	assert.Equal(t, once, twice)

	delegate := NewType("ProgressDelegate")
	assert.Equal(t, delegate, catalog.Bind(delegate))
}

func TestBindClassDoesNotShareArguments(t *testing.T) {
	catalog := NewCatalog(testClasses())
	class := MagickClass{
		Name:    "Extra",
		Methods: []MagickMethod{{Name: "Use", ReturnType: NewType("void"), Arguments: []MagickArgument{NewArgument("image", "MagickImage")}}},
	}

	bound := catalog.BindClass(class)
	assert.True(t, bound.Methods[0].Arguments[0].Type.HasInstance)
	assert.False(t, class.Methods[0].Arguments[0].Type.HasInstance)
}
