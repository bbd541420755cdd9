package generation

import (
	"magickgen/internal"
	"magickgen/internal/config"

	"github.com/dave/jennifer/jen"
)

const libraryFileName = "native_library" + internal.GeneratedSuffix

// emitLibrary renders the unit declaring the native library of every selected
// architecture. The entry points of the class units are bound against these.
func emitLibrary(options Options) *jen.File {
	file := jen.NewFile(options.PackageName)
	file.HeaderComment(headerComment)
	file.ImportName(options.NativeImport, "native")

	file.Var().DefsFunc(func(g *jen.Group) {
		for _, arch := range options.Platform.Architectures() {
			g.Id(libraryName(arch)).Op("=").Qual(options.NativeImport, "NewLibrary").Call(
				jen.Qual(options.NativeImport, arch),
				jen.Lit(config.LibraryName(options.Library, options.Quantum, arch)),
			)
		}
	}).Line()

	return file
}
