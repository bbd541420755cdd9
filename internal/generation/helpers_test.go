package generation

import (
	"os"
	"path/filepath"
	"testing"

	"magickgen/internal/config"
	"magickgen/internal/metadata"

	"github.com/stretchr/testify/require"
)

func testCatalog() *metadata.Catalog {
	return metadata.NewCatalog([]metadata.MagickClass{
		{
			Name:         "MagickImage",
			HasInterface: true,
			Constructor:  &metadata.MagickConstructor{Throws: true},
			Properties: []metadata.MagickProperty{
				{Name: "FileName", Type: metadata.NewType("string?")},
				{Name: "Width", Type: metadata.NewType("size_t"), IsReadOnly: true},
			},
			Methods: []metadata.MagickMethod{
				{
					Name:       "Compare",
					ReturnType: metadata.NewType("IntPtr"),
					Arguments: []metadata.MagickArgument{
						metadata.NewArgument("reference", "MagickImage"),
						{Name: "distortion", Type: metadata.NewType("double"), IsOut: true},
					},
					Throws: true,
				},
				{
					Name:       "Draw",
					ReturnType: metadata.NewType("void"),
					Arguments:  []metadata.MagickArgument{metadata.NewArgument("settings", "DrawingSettings")},
					Throws:     true,
				},
				{
					Name:       "GetAttribute",
					ReturnType: metadata.NewType("string"),
					Arguments:  []metadata.MagickArgument{metadata.NewArgument("name", "string")},
					Throws:     true,
				},
				{
					Name:       "ReadFile",
					ReturnType: metadata.NewType("void"),
					Arguments:  []metadata.MagickArgument{{Name: "settings", Type: metadata.NewType("MagickSettings"), IsHidden: true}},
					Throws:     true,
				},
				{Name: "Strip", ReturnType: metadata.NewType("void"), Throws: true},
			},
		},
		{
			Name:        "MagickSettings",
			Constructor: &metadata.MagickConstructor{},
			Properties: []metadata.MagickProperty{
				{Name: "ColorSpace", Type: metadata.NewType("ColorSpace")},
				{Name: "Debug", Type: metadata.NewType("bool")},
			},
		},
		{Name: "DrawingSettings", IsDynamic: true},
		{
			Name:          "PixelCollection",
			HasInterface:  true,
			IsQuantumType: true,
			Methods: []metadata.MagickMethod{
				{
					Name:       "GetArea",
					ReturnType: metadata.NewType("QuantumType[]"),
					Arguments:  []metadata.MagickArgument{metadata.NewArgument("x", "ssize_t")},
					Throws:     true,
				},
				{
					Name:       "SetArea",
					ReturnType: metadata.NewType("void"),
					Arguments:  []metadata.MagickArgument{metadata.NewArgument("values", "QuantumType[]")},
					Throws:     true,
				},
			},
		},
		{
			Name:     "MagickNET",
			IsStatic: true,
			Properties: []metadata.MagickProperty{
				{Name: "Features", Type: metadata.NewType("string"), IsReadOnly: true},
			},
			Methods: []metadata.MagickMethod{
				{
					Name:       "SetDefaultFont",
					ReturnType: metadata.NewType("void"),
					Arguments: []metadata.MagickArgument{
						{Name: "settings", Type: metadata.NewType("MagickSettings"), IsHidden: true},
						metadata.NewArgument("fontName", "string"),
					},
					Throws: true,
				},
				{
					Name:       "SetLogDelegate",
					ReturnType: metadata.NewType("void"),
					Arguments:  []metadata.MagickArgument{metadata.NewArgument("method", "LogDelegate")},
				},
				{
					Name:       "SetRandomSeed",
					ReturnType: metadata.NewType("void"),
					Arguments:  []metadata.MagickArgument{metadata.NewArgument("seed", "int")},
				},
			},
		},
	})
}

func testOptions(platform config.Platform) Options {
	return Options{
		PackageName:  "magick",
		NativeImport: "magickgen/pkg/native",
		Quantum:      config.Q16,
		Platform:     platform,
		Library:      "Magick.Native",
	}
}

func generateClass(t *testing.T, catalog *metadata.Catalog, name string, options Options) string {
	t.Helper()

	class, found := catalog.Class(name)
	require.True(t, found, name)

	content, err := NewGenerator(catalog, options).GenerateClass(class)
	require.NoError(t, err)
	return string(content)
}

func updateGolden(t *testing.T, path, content string) {
	t.Helper()
	if os.Getenv("UPDATE_GOLDEN") == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating testdata dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("updating golden file: %v", err)
	}
}

func compareGolden(t *testing.T, path, got string) {
	t.Helper()
	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist. Run with UPDATE_GOLDEN=1 to create.", path)
	}
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if string(expected) != got {
		t.Errorf("output differs from golden file %s.\nRun with UPDATE_GOLDEN=1 to update.", path)
	}
}
