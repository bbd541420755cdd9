package metadata

import (
	"maps"
	"slices"
)

// Catalog is the read-only registry of every class known to the generator.
// It is built once and shared by all generation components.
type Catalog struct {
	classes []MagickClass
	byName  map[string]int
}

// NewCatalog sorts the classes by name and binds every non built-in type
// reference either to a catalog class or to an enum. When two classes share a
// name the last one wins.
func NewCatalog(classes []MagickClass) *Catalog {
	unique := make(map[string]MagickClass, len(classes))
	for _, class := range classes {
		unique[class.Name] = class
	}

	catalog := &Catalog{
		classes: make([]MagickClass, 0, len(unique)),
		byName:  make(map[string]int, len(unique)),
	}
	for _, name := range slices.Sorted(maps.Keys(unique)) {
		catalog.byName[name] = len(catalog.classes)
		catalog.classes = append(catalog.classes, unique[name])
	}

	for i := range catalog.classes {
		catalog.classes[i] = catalog.BindClass(catalog.classes[i])
	}

	return catalog
}

// Classes returns the classes ordered by name. The slice must not be modified.
func (catalog *Catalog) Classes() []MagickClass {
	return catalog.classes
}

func (catalog *Catalog) Len() int {
	return len(catalog.classes)
}

// Class looks up a class by name.
func (catalog *Catalog) Class(name string) (MagickClass, bool) {
	idx, found := catalog.byName[name]
	if !found {
		return MagickClass{}, false
	}

	return catalog.classes[idx], true
}

func (catalog *Catalog) HasInterface(name string) bool {
	class, found := catalog.Class(name)
	return found && class.HasInterface
}

func (catalog *Catalog) IsDynamic(name string) bool {
	class, found := catalog.Class(name)
	return found && class.IsDynamic
}

func (catalog *Catalog) IsQuantumType(name string) bool {
	class, found := catalog.Class(name)
	return found && class.IsQuantumType
}

// HasInstance reports whether name is a class whose values wrap a native handle.
func (catalog *Catalog) HasInstance(name string) bool {
	class, found := catalog.Class(name)
	return found && !class.IsStatic
}

// Bind resolves a type against the catalog. Built-in types and delegates are
// returned unchanged.
func (catalog *Catalog) Bind(t MagickType) MagickType {
	if t.IsBuiltIn || t.IsDelegate {
		return t
	}

	t.HasInstance = false
	t.IsEnum = false
	t.NativeTypeCast = ""
	if catalog.HasInstance(t.Name) {
		t.HasInstance = true
	} else {
		t.IsEnum = true
		t.NativeTypeCast = "uintptr"
	}

	return t
}

// BindClass returns a copy of class with every member type bound to the catalog.
func (catalog *Catalog) BindClass(class MagickClass) MagickClass {
	class.Properties = slices.Clone(class.Properties)
	for i := range class.Properties {
		class.Properties[i].Type = catalog.Bind(class.Properties[i].Type)
	}

	if class.Constructor != nil {
		constructor := *class.Constructor
		constructor.Arguments = catalog.bindArguments(constructor.Arguments)
		class.Constructor = &constructor
	}

	class.Methods = slices.Clone(class.Methods)
	for i := range class.Methods {
		class.Methods[i].ReturnType = catalog.Bind(class.Methods[i].ReturnType)
		class.Methods[i].Arguments = catalog.bindArguments(class.Methods[i].Arguments)
	}

	return class
}

func (catalog *Catalog) bindArguments(arguments []MagickArgument) []MagickArgument {
	arguments = slices.Clone(arguments)
	for i := range arguments {
		arguments[i].Type = catalog.Bind(arguments[i].Type)
	}

	return arguments
}
