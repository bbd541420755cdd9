package generation

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"

	"magickgen/internal"
)

// lowerFirst lowers the leading run of upper case letters, keeping the last one
// when it starts a new word: MagickImage -> magickImage, IOBuffer -> ioBuffer.
func lowerFirst(name string) string {
	runes := []rune(name)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	if upper > 1 && upper < len(runes) {
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// upperFirst makes an identifier exported.
func upperFirst(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// fileName converts a class name to its snake case unit name:
// MagickImage -> magick_image_gen.go, MagickNET -> magick_net_gen.go.
// The _gen suffix keeps class names such as Arm64 from acting as build constraints.
func fileName(className string) string {
	var b strings.Builder
	runes := []rune(className)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			previousLower := !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if previousLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	b.WriteString(internal.GeneratedSuffix)
	return b.String()
}

func nativeTypeName(className string) string {
	return "native" + className
}

func quantumAliasName(className string) string {
	return lowerFirst(className) + "Quantum"
}

func libraryName(arch string) string {
	return "library" + arch
}

// bodyNames are the identifiers every generated function body may declare or use.
var bodyNames = map[string]bool{
	"err":       true,
	"exception": true,
	"instance":  true,
	"n":         true,
	"native":    true,
	"result":    true,
}

// safeName renames an argument that is a Go keyword, shadows a predeclared
// identifier or collides with a name of the generated body: type -> typeValue.
func safeName(name string) string {
	if token.IsKeyword(name) || bodyNames[name] || types.Universe.Lookup(name) != nil {
		return name + "Value"
	}
	return name
}

// stateName is the hand-written struct holding the hidden arguments of the
// instance members of a class.
func stateName(className string) string {
	return lowerFirst(className) + "State"
}
