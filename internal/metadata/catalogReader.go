// The package used for describing and reading the native API surface of Magick.Native.
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// CatalogReader reads class descriptors from a directory of JSON files.
type CatalogReader struct {
	catalog *Catalog
}

type classDescriptor struct {
	Name        string                 `json:"name"`
	Static      bool                   `json:"static"`
	Interface   bool                   `json:"interface"`
	Dynamic     bool                   `json:"dynamic"`
	QuantumType bool                   `json:"quantumType"`
	Properties  []propertyDescriptor   `json:"properties"`
	Constructor *constructorDescriptor `json:"constructor"`
	Methods     []methodDescriptor     `json:"methods"`
}

type propertyDescriptor struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ReadOnly bool   `json:"readonly"`
	Throws   bool   `json:"throws"`
}

type constructorDescriptor struct {
	Arguments []argumentDescriptor `json:"arguments"`
	Throws    bool                 `json:"throws"`
}

type methodDescriptor struct {
	Name      string               `json:"name"`
	Type      string               `json:"type"`
	Static    bool                 `json:"static"`
	Throws    bool                 `json:"throws"`
	Arguments []argumentDescriptor `json:"arguments"`
}

type argumentDescriptor struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Out    bool   `json:"out"`
	Hidden bool   `json:"hidden"`
}

// NewReader reads every *.json file in dir, in lexical order, and builds the catalog.
func NewReader(dir string) (*CatalogReader, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("cannot list catalog %s: %w", dir, err)
	}
	slices.Sort(paths)

	classes := make([]MagickClass, 0, len(paths))
	for _, path := range paths {
		class, err := readClassFile(path)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	return &CatalogReader{NewCatalog(classes)}, nil
}

// Catalog returns the catalog built from the descriptors.
func (reader *CatalogReader) Catalog() *Catalog {
	return reader.catalog
}

// Tries to get class with given name
func (reader *CatalogReader) TryGetClass(name string) (element MagickClass, found bool) {
	return reader.catalog.Class(name)
}

func readClassFile(path string) (MagickClass, error) {
	file, err := os.Open(path)
	if err != nil {
		return MagickClass{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer file.Close()

	class, err := ReadClass(file)
	if err != nil {
		return MagickClass{}, fmt.Errorf("parse error in %s: %w", path, err)
	}

	return class, nil
}

// ReadClass decodes one JSON class descriptor. Type names are resolved with
// NewType and stay unbound until the class is added to a Catalog.
func ReadClass(r io.Reader) (MagickClass, error) {
	var descriptor classDescriptor
	if err := json.NewDecoder(r).Decode(&descriptor); err != nil {
		return MagickClass{}, err
	}

	class := MagickClass{
		Name:          descriptor.Name,
		IsStatic:      descriptor.Static,
		HasInterface:  descriptor.Interface,
		IsDynamic:     descriptor.Dynamic,
		IsQuantumType: descriptor.QuantumType,
	}

	for _, property := range descriptor.Properties {
		class.Properties = append(class.Properties, MagickProperty{
			Name:       property.Name,
			Type:       NewType(property.Type),
			IsReadOnly: property.ReadOnly,
			Throws:     property.Throws,
		})
	}

	if descriptor.Constructor != nil {
		class.Constructor = &MagickConstructor{
			Arguments: getArguments(descriptor.Constructor.Arguments),
			Throws:    descriptor.Constructor.Throws,
		}
	}

	for _, method := range descriptor.Methods {
		returnType := method.Type
		if returnType == "" {
			returnType = "void"
		}

		class.Methods = append(class.Methods, MagickMethod{
			Name:       method.Name,
			ReturnType: NewType(returnType),
			Arguments:  getArguments(method.Arguments),
			IsStatic:   method.Static,
			Throws:     method.Throws,
		})
	}

	return class, nil
}

func getArguments(descriptors []argumentDescriptor) []MagickArgument {
	arguments := make([]MagickArgument, 0, len(descriptors))
	for _, argument := range descriptors {
		arguments = append(arguments, MagickArgument{
			Name:     argument.Name,
			Type:     NewType(argument.Type),
			IsOut:    argument.Out,
			IsHidden: argument.Hidden,
		})
	}

	return arguments
}
