package generation

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"magickgen/internal/config"
	"magickgen/internal/metadata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitHiddenArgumentOfStaticMethod(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickNET", testOptions(config.X64))

	assert.Contains(t, code, `native.NewProc[func(settings uintptr, fontName uintptr, exception *uintptr)](libraryX64, "MagickNET_SetDefaultFont")`)
	assert.Contains(t, code, `func nativeMagickNETSetDefaultFont(fontName string) error {
	fontNameNative := native.NewString(fontName)
	defer fontNameNative.Dispose()
	var exception uintptr
	magickNETSetDefaultFontX64.Get()(getMagickSettingsInstance(settings), fontNameNative.Instance(), &exception)
	return native.CheckException(exception)
}`)
}

func TestEmitStaticClass(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickNET", testOptions(config.X64))

	assert.Contains(t, code, "// Code generated by magickgen. DO NOT EDIT.")
	assert.Contains(t, code, "package magick")
	assert.Contains(t, code, `func nativeMagickNETFeatures() string {
	result := magickNETFeaturesGetX64.Get()()
	return native.GoString(result)
}`)
	assert.Contains(t, code, `func nativeMagickNETSetRandomSeed(seed int) {
	magickNETSetRandomSeedX64.Get()(int32(seed))
}`)
	assert.Contains(t, code, `func nativeMagickNETSetLogDelegate(method LogDelegate) {
	magickNETSetLogDelegateX64.Get()(native.NewCallback(method))
}`)

	assert.NotContains(t, code, "type nativeMagickNET struct")
	assert.NotContains(t, code, "Quantum =")
	assert.NotContains(t, code, "SetFeatures")
	assert.NotContains(t, code, "libraryARM64")
}

func TestEmitMultiArchDispatch(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.AnyCPU))

	assert.Contains(t, code, `func (n *nativeMagickImage) Strip() error {
	var exception uintptr
	if native.IsArm64() {
		magickImageStripARM64.Get()(n.Instance(), &exception)
	} else if native.Is64Bit() {
		magickImageStripX64.Get()(n.Instance(), &exception)
	} else {
		magickImageStripX86.Get()(n.Instance(), &exception)
	}
	return n.CheckException(exception)
}`)

	for _, arch := range []string{"ARM64", "X64", "X86"} {
		assert.Contains(t, code, `native.NewProc[func(instance uintptr, exception *uintptr)](library`+arch+`, "MagickImage_Strip")`)
	}
}

func TestEmitSingleArchCallsDirectly(t *testing.T) {
	for _, platform := range []config.Platform{config.X64, config.X86, config.Arm64} {
		t.Run(string(platform), func(t *testing.T) {
			code := generateClass(t, testCatalog(), "MagickImage", testOptions(platform))
			arch := platform.Architectures()[0]

			assert.NotContains(t, code, "native.IsArm64()")
			assert.NotContains(t, code, "native.Is64Bit()")
			assert.Contains(t, code, "magickImageStrip"+arch+".Get()(n.Instance(), &exception)")
			assert.Contains(t, code, "result := magickImageWidthGet"+arch+".Get()(n.Instance())")
		})
	}
}

func TestEmitInstanceResult(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.AnyCPU))

	assert.Contains(t, code, `func (n *nativeMagickImage) Width() uint {
	var result uintptr
	if native.IsArm64() {
		result = magickImageWidthGetARM64.Get()(n.Instance())
	} else if native.Is64Bit() {
		result = magickImageWidthGetX64.Get()(n.Instance())
	} else {
		result = magickImageWidthGetX86.Get()(n.Instance())
	}
	return uint(result)
}`)
	assert.NotContains(t, code, "SetWidth")
}

func TestEmitThrowingResult(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.X64))

	assert.Contains(t, code, `func (n *nativeMagickImage) GetAttribute(name string) (string, error) {
	nameNative := native.NewString(name)
	defer nameNative.Dispose()
	var exception uintptr
	result := magickImageGetAttributeX64.Get()(n.Instance(), nameNative.Instance(), &exception)
	if err := n.CheckException(exception); err != nil {
		return "", err
	}
	return native.GoString(result), nil
}`)
}

func TestEmitOutArgument(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.X64))

	assert.Contains(t, code, `native.NewProc[func(instance uintptr, reference uintptr, distortion *float64, exception *uintptr) uintptr](libraryX64, "MagickImage_Compare")`)
	assert.Contains(t, code, `func (n *nativeMagickImage) Compare(reference IMagickImage) (uintptr, float64, error) {
	var distortion float64
	var exception uintptr
	result := magickImageCompareX64.Get()(n.Instance(), getMagickImageInstance(reference), &distortion, &exception)
	if err := n.CheckException(exception); err != nil {
		return 0, 0, err
	}
	return result, distortion, nil
}`)
}

func TestEmitDynamicArgument(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.X64))

	assert.Contains(t, code, `func (n *nativeMagickImage) Draw(settings *DrawingSettings) error {
	settingsNative := createDrawingSettingsNative(settings)
	defer settingsNative.Dispose()
	var exception uintptr
	magickImageDrawX64.Get()(n.Instance(), settingsNative.Instance(), &exception)
	return n.CheckException(exception)
}`)
}

func TestEmitHiddenArgumentOfInstanceMethod(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.X64))

	assert.Contains(t, code, `func (n *nativeMagickImage) ReadFile() error {
	var exception uintptr
	magickImageReadFileX64.Get()(n.Instance(), getMagickSettingsInstance(n.settings), &exception)
	return n.CheckException(exception)
}`)
	assert.Contains(t, code, "type nativeMagickImage struct {\n\tnative.Object\n\tmagickImageState\n}")

	code = generateClass(t, testCatalog(), "MagickSettings", testOptions(config.X64))
	assert.NotContains(t, code, "magickSettingsState")
}

func TestEmitReservedArgumentNames(t *testing.T) {
	catalog := metadata.NewCatalog([]metadata.MagickClass{
		{
			Name:     "Geometry",
			IsStatic: true,
			Methods: []metadata.MagickMethod{
				{
					Name:       "Apply",
					ReturnType: metadata.NewType("IntPtr"),
					Arguments: []metadata.MagickArgument{
						metadata.NewArgument("type", "string"),
						metadata.NewArgument("result", "ssize_t"),
						metadata.NewArgument("instance", "IntPtr"),
						metadata.NewArgument("len", "size_t"),
						{Name: "exception", Type: metadata.NewType("double"), IsOut: true},
					},
					Throws: true,
				},
			},
		},
		{
			Name: "Drawable",
			Methods: []metadata.MagickMethod{
				{
					Name:       "Draw",
					ReturnType: metadata.NewType("void"),
					Arguments: []metadata.MagickArgument{
						{Name: "func", Type: metadata.NewType("double"), IsHidden: true},
						metadata.NewArgument("n", "bool"),
					},
				},
			},
		},
	})

	code := generateClass(t, catalog, "Geometry", testOptions(config.X64))
	assert.Contains(t, code, `native.NewProc[func(typeValue uintptr, resultValue int, instanceValue uintptr, lenValue uintptr, exceptionValue *float64, exception *uintptr) uintptr](libraryX64, "Geometry_Apply")`)
	assert.Contains(t, code, `func nativeGeometryApply(typeValue string, resultValue int, instanceValue uintptr, lenValue uint) (uintptr, float64, error) {
	typeValueNative := native.NewString(typeValue)
	defer typeValueNative.Dispose()
	var exceptionValue float64
	var exception uintptr
	result := geometryApplyX64.Get()(typeValueNative.Instance(), resultValue, instanceValue, uintptr(lenValue), &exceptionValue, &exception)
	if err := native.CheckException(exception); err != nil {
		return 0, 0, err
	}
	return result, exceptionValue, nil
}`)
	_, err := parser.ParseFile(token.NewFileSet(), "geometry_gen.go", code, parser.AllErrors)
	require.NoError(t, err)

	code = generateClass(t, catalog, "Drawable", testOptions(config.X64))
	assert.Contains(t, code, `func (n *nativeDrawable) Draw(nValue bool) {
	drawableDrawX64.Get()(n.Instance(), n.funcValue, native.NewBool(nValue))
}`)
	_, err = parser.ParseFile(token.NewFileSet(), "drawable_gen.go", code, parser.AllErrors)
	require.NoError(t, err)
}

func TestEmitNullableString(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.X64))

	assert.Contains(t, code, `func (n *nativeMagickImage) SetFileName(value *string) {
	valueNative := native.NewNullableString(value)
	defer valueNative.Dispose()
	magickImageFileNameSetX64.Get()(n.Instance(), valueNative.Instance())
}`)
	assert.Contains(t, code, "func (n *nativeMagickImage) FileName() string {")
}

func TestEmitConstructorAndDispose(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickImage", testOptions(config.AnyCPU))

	assert.Contains(t, code, "type nativeMagickImage struct {\n\tnative.Object\n\tmagickImageState\n}")
	assert.Contains(t, code, "func newNativeMagickImage(instance uintptr) *nativeMagickImage {")
	assert.Contains(t, code, "native.NewObject(instance, disposeMagickImage)")
	assert.Contains(t, code, `func getMagickImageInstance(value native.Handle) uintptr {
	return native.GetInstance(value)
}`)
	assert.Contains(t, code, `func createNativeMagickImage() (*nativeMagickImage, error) {
	var exception uintptr
	var result uintptr
	if native.IsArm64() {
		result = magickImageCreateARM64.Get()(&exception)
	} else if native.Is64Bit() {
		result = magickImageCreateX64.Get()(&exception)
	} else {
		result = magickImageCreateX86.Get()(&exception)
	}
	if err := native.CheckException(exception); err != nil {
		return nil, err
	}
	return newNativeMagickImage(result), nil
}`)
	assert.Contains(t, code, `func disposeMagickImage(instance uintptr) {
	if native.IsArm64() {
		magickImageDisposeARM64.Get()(instance)
	} else if native.Is64Bit() {
		magickImageDisposeX64.Get()(instance)
	} else {
		magickImageDisposeX86.Get()(instance)
	}
}`)
}

func TestEmitEnumAndBool(t *testing.T) {
	code := generateClass(t, testCatalog(), "MagickSettings", testOptions(config.X64))

	assert.Contains(t, code, `func createNativeMagickSettings() *nativeMagickSettings {
	result := magickSettingsCreateX64.Get()()
	return newNativeMagickSettings(result)
}`)
	assert.Contains(t, code, `func (n *nativeMagickSettings) ColorSpace() ColorSpace {
	result := magickSettingsColorSpaceGetX64.Get()(n.Instance())
	return ColorSpace(result)
}`)
	assert.Contains(t, code, "magickSettingsColorSpaceSetX64.Get()(n.Instance(), uintptr(value))")
	assert.Contains(t, code, `native.NewProc[func(instance uintptr) native.Bool](libraryX64, "MagickSettings_Debug_Get")`)
	assert.Contains(t, code, `func (n *nativeMagickSettings) Debug() bool {
	result := magickSettingsDebugGetX64.Get()(n.Instance())
	return result.Value()
}`)
	assert.Contains(t, code, "magickSettingsDebugSetX64.Get()(n.Instance(), native.NewBool(value))")
}

func TestEmitDynamicClassWithoutConstructor(t *testing.T) {
	code := generateClass(t, testCatalog(), "DrawingSettings", testOptions(config.X64))

	assert.Contains(t, code, `func createNativeDrawingSettings() *nativeDrawingSettings {
	result := drawingSettingsCreateX64.Get()()
	return newNativeDrawingSettings(result)
}`)
}

func TestEmitQuantumType(t *testing.T) {
	tests := []struct {
		quantum  config.Quantum
		expected string
	}{
		{config.Q8, "type pixelCollectionQuantum = uint8"},
		{config.Q16, "type pixelCollectionQuantum = uint16"},
		{config.Q16HDRI, "type pixelCollectionQuantum = float32"},
	}

	for _, test := range tests {
		t.Run(string(test.quantum), func(t *testing.T) {
			options := testOptions(config.X64)
			options.Quantum = test.quantum
			code := generateClass(t, testCatalog(), "PixelCollection", options)

			assert.Equal(t, 1, strings.Count(code, "type pixelCollectionQuantum ="))
			assert.Contains(t, code, test.expected)
		})
	}
}

func TestEmitQuantumBuffers(t *testing.T) {
	code := generateClass(t, testCatalog(), "PixelCollection", testOptions(config.X64))

	assert.Contains(t, code, "// pixelCollectionQuantum is the pixel channel type of the Q16 build.")
	assert.Contains(t, code, `func (n *nativePixelCollection) GetArea(x int) (*pixelCollectionQuantum, error) {`)
	assert.Contains(t, code, "return nil, err")
	assert.Contains(t, code, `func (n *nativePixelCollection) SetArea(values []pixelCollectionQuantum) error {
	valuesFixed := native.Pin(values)
	defer valuesFixed.Unpin()
	var exception uintptr
	pixelCollectionSetAreaX64.Get()(n.Instance(), valuesFixed.Pointer(), &exception)
	return n.CheckException(exception)
}`)
}

func TestEmitWithoutQuantumType(t *testing.T) {
	for _, name := range []string{"MagickImage", "MagickSettings", "MagickNET", "DrawingSettings"} {
		code := generateClass(t, testCatalog(), name, testOptions(config.AnyCPU))
		assert.NotContains(t, code, "Quantum =", name)
	}
}

func TestEmitQuantumClassWithoutQuantumMembers(t *testing.T) {
	catalog := metadata.NewCatalog([]metadata.MagickClass{
		{
			Name:          "MagickColor",
			HasInterface:  true,
			IsQuantumType: true,
			Properties: []metadata.MagickProperty{
				{Name: "IsCMYK", Type: metadata.NewType("bool")},
			},
		},
		{
			Name:     "ColorCheck",
			IsStatic: true,
			Methods: []metadata.MagickMethod{
				{
					Name:       "IsGray",
					ReturnType: metadata.NewType("bool"),
					Arguments:  []metadata.MagickArgument{metadata.NewArgument("color", "MagickColor")},
				},
			},
		},
	})

	code := generateClass(t, catalog, "MagickColor", testOptions(config.X64))
	assert.NotContains(t, code, "magickColorQuantum")

	code = generateClass(t, catalog, "ColorCheck", testOptions(config.X64))
	assert.Contains(t, code, "type colorCheckQuantum = uint16")
	assert.Contains(t, code, "func nativeColorCheckIsGray(color IMagickColor[colorCheckQuantum]) bool {")
}

func TestEmitSeparatesDeclarations(t *testing.T) {
	for _, class := range testCatalog().Classes() {
		code := generateClass(t, testCatalog(), class.Name, testOptions(config.AnyCPU))

		assert.NotContains(t, code, "}\nfunc ", class.Name)
		assert.NotContains(t, code, "}\ntype ", class.Name)
		assert.NotContains(t, code, ")\nfunc ", class.Name)
		assert.NotContains(t, code, ")\n// ", class.Name)
		assert.True(t, strings.HasSuffix(code, "}\n"), class.Name)
		assert.False(t, strings.HasSuffix(code, "\n\n"), class.Name)
	}

	code := generateClass(t, testCatalog(), "PixelCollection", testOptions(config.X64))
	assert.Contains(t, code, "type pixelCollectionQuantum = uint16\n\nvar (\n")
	assert.Contains(t, code, "\n)\n\n// nativePixelCollection owns")
}

func TestEmitIsDeterministic(t *testing.T) {
	catalog := testCatalog()
	for _, class := range catalog.Classes() {
		first := generateClass(t, catalog, class.Name, testOptions(config.AnyCPU))
		second := generateClass(t, catalog, class.Name, testOptions(config.AnyCPU))
		require.Equal(t, first, second, class.Name)
	}
}

func TestEmitLibrary(t *testing.T) {
	content, err := render(emitLibrary(testOptions(config.AnyCPU)))
	require.NoError(t, err)
	code := string(content)

	assert.Contains(t, code, `native.NewLibrary(native.ARM64, "Magick.Native-Q16-arm64")`)
	assert.Contains(t, code, `native.NewLibrary(native.X64, "Magick.Native-Q16-x64")`)
	assert.Contains(t, code, `native.NewLibrary(native.X86, "Magick.Native-Q16-x86")`)

	content, err = render(emitLibrary(testOptions(config.X86)))
	require.NoError(t, err)
	assert.Contains(t, string(content), `native.NewLibrary(native.X86, "Magick.Native-Q16-x86")`)
	assert.NotContains(t, string(content), "native.X64")
}
