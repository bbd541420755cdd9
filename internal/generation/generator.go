package generation

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"magickgen/internal/metadata"

	"github.com/dave/jennifer/jen"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("magickgen.generation")

// Unit is one rendered source file.
type Unit struct {
	Name    string
	Content []byte
}

type Generator struct {
	Catalog *metadata.Catalog
	Classes map[string]metadata.MagickClass
	Options Options
}

func NewGenerator(catalog *metadata.Catalog, options Options) *Generator {
	return &Generator{
		catalog,
		make(map[string]metadata.MagickClass, 0),
		options,
	}
}

// RegisterClass selects a class for emission. Classification always sees the
// whole catalog, registered or not.
func (generator *Generator) RegisterClass(element metadata.MagickClass) {
	generator.Classes[element.Name] = generator.Catalog.BindClass(element)
}

// RegisterAll selects every catalog class.
func (generator *Generator) RegisterAll() {
	for _, class := range generator.Catalog.Classes() {
		generator.RegisterClass(class)
	}
}

// Generate renders the library unit and one unit per registered class, in
// class name order.
func (generator *Generator) Generate() ([]Unit, error) {
	units := make([]Unit, 0, len(generator.Classes)+1)

	library, err := render(emitLibrary(generator.Options))
	if err != nil {
		return nil, fmt.Errorf("cannot render native library: %w", err)
	}
	units = append(units, Unit{libraryFileName, library})

	for _, name := range generator.classNames() {
		content, err := generator.GenerateClass(generator.Classes[name])
		if err != nil {
			return nil, err
		}
		units = append(units, Unit{fileName(name), content})
	}

	return units, nil
}

// GenerateClass renders the unit of a single class.
func (generator *Generator) GenerateClass(class metadata.MagickClass) ([]byte, error) {
	class = generator.Catalog.BindClass(class)
	content, err := render(newClassEmitter(class, generator.Catalog, generator.Options).Emit())
	if err != nil {
		return nil, fmt.Errorf("cannot render %s: %w", class.Name, err)
	}

	log.Debugf("rendered %s (%d bytes)", class.Name, len(content))
	return content, nil
}

// Write generates every unit into path and returns the files that changed.
// Files whose content is already up to date are left untouched.
func (generator *Generator) Write(path string) ([]string, error) {
	units, err := generator.Generate()
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(path, os.ModePerm)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, err
	}

	written := make([]string, 0)
	for _, unit := range units {
		target := filepath.Join(path, unit.Name)
		current, err := os.ReadFile(target)
		if err == nil && bytes.Equal(current, unit.Content) {
			continue
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}

		if err := os.WriteFile(target, unit.Content, 0644); err != nil {
			return nil, fmt.Errorf("cannot write %s: %w", target, err)
		}
		log.Infof("wrote %s", target)
		written = append(written, target)
	}

	return written, nil
}

// Check generates every unit in memory and returns the units that are missing
// from path or differ from the files there.
func (generator *Generator) Check(path string) ([]string, error) {
	units, err := generator.Generate()
	if err != nil {
		return nil, err
	}

	stale := make([]string, 0)
	for _, unit := range units {
		current, err := os.ReadFile(filepath.Join(path, unit.Name))
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, unit.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(current, unit.Content) {
			stale = append(stale, unit.Name)
		}
	}

	return stale, nil
}

func (generator *Generator) classNames() []string {
	names := make([]string, 0, len(generator.Classes))
	for name := range generator.Classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func render(file *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
