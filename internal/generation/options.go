package generation

import "magickgen/internal/config"

// Options holds the build configuration that shapes the emitted text.
type Options struct {
	// PackageName is the package clause of every unit.
	PackageName string
	// NativeImport is the import path of the support runtime.
	NativeImport string
	Quantum      config.Quantum
	Platform     config.Platform
	// Library is the native library base name, e.g. Magick.Native.
	Library string
}

// NewOptions reads the generator section of a configuration.
func NewOptions(c *config.Config) Options {
	return Options{
		PackageName:  c.Generator.Package,
		NativeImport: c.Generator.NativeImport,
		Quantum:      c.Generator.Quantum,
		Platform:     c.Generator.Platform,
		Library:      c.Generator.Library,
	}
}
