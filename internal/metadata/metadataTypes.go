package metadata

import "strings"

// MagickType describes one argument, property or return type of the native API.
type MagickType struct {
	// Name as written in the catalog, without the nullable marker.
	Name           string
	NativeName     string
	ManagedName    string
	NativeTypeCast string
	// FixedName is the element type of a fixed-size buffer.
	FixedName     string
	IsVoid        bool
	IsBuiltIn     bool
	IsNullable    bool
	IsFixed       bool
	IsDelegate    bool
	IsBool        bool
	IsString      bool
	IsQuantumType bool
	IsEnum        bool
	// HasInstance is set for types wrapping an opaque native handle.
	HasInstance bool
}

// MagickArgument is a single argument of a native method.
type MagickArgument struct {
	Name     string
	Type     MagickType
	IsOut    bool
	IsHidden bool
}

// MagickProperty is a native getter with an optional setter.
type MagickProperty struct {
	Name       string
	Type       MagickType
	IsReadOnly bool
	Throws     bool
}

// MagickConstructor creates the native instance of a class.
type MagickConstructor struct {
	Arguments []MagickArgument
	Throws    bool
}

type MagickMethod struct {
	Name       string
	ReturnType MagickType
	Arguments  []MagickArgument
	IsStatic   bool
	Throws     bool
}

type MagickClass struct {
	Name          string
	IsStatic      bool
	HasInterface  bool
	IsDynamic     bool
	IsQuantumType bool
	Properties    []MagickProperty
	Constructor   *MagickConstructor
	Methods       []MagickMethod
}

// The map of catalog type names to their Go representation.
var builtInTypes map[string]MagickType = map[string]MagickType{
	"void":          {IsVoid: true},
	"bool":          {NativeName: "int32", ManagedName: "bool", IsBool: true},
	"byte":          {NativeName: "byte", ManagedName: "byte"},
	"byte[]":        {NativeName: "*byte", ManagedName: "[]byte", FixedName: "byte", IsFixed: true},
	"double":        {NativeName: "float64", ManagedName: "float64"},
	"double[]":      {NativeName: "*float64", ManagedName: "[]float64", FixedName: "float64", IsFixed: true},
	"float":         {NativeName: "float32", ManagedName: "float32"},
	"int":           {NativeName: "int32", ManagedName: "int", NativeTypeCast: "int32"},
	"uint":          {NativeName: "uint32", ManagedName: "uint", NativeTypeCast: "uint32"},
	"long":          {NativeName: "int64", ManagedName: "int64"},
	"ulong":         {NativeName: "uint64", ManagedName: "uint64"},
	"size_t":        {NativeName: "uintptr", ManagedName: "uint", NativeTypeCast: "uintptr"},
	"ssize_t":       {NativeName: "int", ManagedName: "int"},
	"IntPtr":        {NativeName: "uintptr", ManagedName: "uintptr"},
	"void*":         {NativeName: "uintptr", ManagedName: "uintptr"},
	"string":        {NativeName: "uintptr", ManagedName: "string", IsString: true},
	"QuantumType":   {NativeName: "QuantumType", ManagedName: "QuantumType", IsQuantumType: true},
	"QuantumType[]": {NativeName: "*QuantumType", ManagedName: "[]QuantumType", FixedName: "QuantumType", IsFixed: true, IsQuantumType: true},
}

// NewType resolves a catalog type name. Names that are not built in are left
// unbound until a Catalog decides whether they name a class or an enum.
func NewType(name string) MagickType {
	isNullable := false
	if trimmed, found := strings.CutSuffix(name, "?"); found {
		name = trimmed
		isNullable = true
	}

	builtInType, found := builtInTypes[name]
	if found {
		builtInType.Name = name
		builtInType.IsBuiltIn = true
		builtInType.IsNullable = isNullable
		return builtInType
	}

	retType := MagickType{
		Name:        name,
		NativeName:  "uintptr",
		ManagedName: name,
		IsNullable:  isNullable,
	}
	if name != "Delegate" && strings.HasSuffix(name, "Delegate") {
		retType.IsDelegate = true
		retType.IsNullable = true
	}

	return retType
}

// NewArgument is a shorthand for an in-argument of the named type.
func NewArgument(name string, typeName string) MagickArgument {
	return MagickArgument{Name: name, Type: NewType(typeName)}
}
