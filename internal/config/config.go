// Package config handles the magickgen.toml build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const FileName = "magickgen.toml"

// Config represents a magickgen.toml build configuration.
type Config struct {
	Generator Generator `toml:"generator"`
	Fetch     Fetch     `toml:"fetch"`

	// Dir is the directory containing the magickgen.toml file (set at load time).
	Dir string `toml:"-"`

	// packageDerived is set when the package name was taken from the output directory.
	packageDerived bool
}

// Generator configures code generation.
type Generator struct {
	Catalog      string   `toml:"catalog"`
	Output       string   `toml:"output"`
	Package      string   `toml:"package"`
	NativeImport string   `toml:"native-import"`
	Quantum      Quantum  `toml:"quantum"`
	Platform     Platform `toml:"platform"`
	Library      string   `toml:"library"`
	// Classes restricts generation to the named classes; empty means all.
	Classes []string `toml:"classes"`
}

// Fetch configures downloading of the native binaries.
type Fetch struct {
	Package string `toml:"package"`
	Version string `toml:"version"`
	Output  string `toml:"output"`
	Source  string `toml:"source"`
}

// Default returns the configuration used when no magickgen.toml exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load parses a magickgen.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	c.applyDefaults()
	if err := c.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &c, nil
}

// FindAndLoad walks up from startDir to find a magickgen.toml file,
// then loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Normalize checks the enumerated settings and rewrites them to their
// canonical spelling.
func (c *Config) Normalize() error {
	quantum, err := ParseQuantum(string(c.Generator.Quantum))
	if err != nil {
		return err
	}
	platform, err := ParsePlatform(string(c.Generator.Platform))
	if err != nil {
		return err
	}

	c.Generator.Quantum = quantum
	c.Generator.Platform = platform
	return nil
}

// Resolve returns path relative to the configuration directory.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Dir == "" {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// SetOutput changes the output directory. A package name derived from the
// previous directory follows the new one.
func (c *Config) SetOutput(output string) {
	c.Generator.Output = output
	if c.packageDerived {
		c.Generator.Package = filepath.Base(output)
	}
}

// SetPackage pins the package name.
func (c *Config) SetPackage(name string) {
	c.Generator.Package = name
	c.packageDerived = false
}

// FetchPackage returns the NuGet package id, derived from quantum and platform
// when not configured.
func (c *Config) FetchPackage() string {
	if c.Fetch.Package != "" {
		return c.Fetch.Package
	}
	return fmt.Sprintf("Magick.NET-%s-%s", c.Generator.Quantum, c.Generator.Platform)
}

func (c *Config) applyDefaults() {
	if c.Generator.Catalog == "" {
		c.Generator.Catalog = "catalog"
	}
	if c.Generator.Output == "" {
		c.Generator.Output = "magick"
	}
	if c.Generator.Package == "" {
		c.Generator.Package = filepath.Base(c.Generator.Output)
		c.packageDerived = true
	}
	if c.Generator.NativeImport == "" {
		c.Generator.NativeImport = "magickgen/pkg/native"
	}
	if c.Generator.Quantum == "" {
		c.Generator.Quantum = Q16
	}
	if c.Generator.Platform == "" {
		c.Generator.Platform = AnyCPU
	}
	if c.Generator.Library == "" {
		c.Generator.Library = "Magick.Native"
	}
	if c.Fetch.Output == "" {
		c.Fetch.Output = "runtimes"
	}
}
