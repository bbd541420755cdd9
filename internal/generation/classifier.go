package generation

import (
	"magickgen/internal/metadata"

	"github.com/dave/jennifer/jen"
)

// typeClassifier decides how a MagickType is represented at the native
// boundary and at the public boundary of one generated unit.
type typeClassifier struct {
	catalog      *metadata.Catalog
	nativePath   string
	quantumAlias string
}

func (c typeClassifier) native(name string) *jen.Statement {
	return jen.Qual(c.nativePath, name)
}

func (c typeClassifier) isDynamic(t metadata.MagickType) bool {
	return t.HasInstance && c.catalog.IsDynamic(t.Name)
}

// needsCreate reports whether a temporary native value is created before the call.
func (c typeClassifier) needsCreate(t metadata.MagickType) bool {
	return t.IsString || c.isDynamic(t)
}

func (c typeClassifier) usesQuantumType(t metadata.MagickType) bool {
	return t.IsQuantumType || c.catalog.IsQuantumType(t.Name)
}

func (c typeClassifier) elementType(t metadata.MagickType) *jen.Statement {
	if t.IsQuantumType {
		return jen.Id(c.quantumAlias)
	}
	return jen.Id(t.FixedName)
}

// nativeType is the Go type of t in a native entry point signature.
func (c typeClassifier) nativeType(t metadata.MagickType) *jen.Statement {
	switch {
	case t.HasInstance || t.IsString || t.IsDelegate || t.IsEnum:
		return jen.Uintptr()
	case t.IsFixed:
		return jen.Op("*").Add(c.elementType(t))
	case t.IsBool:
		return c.native("Bool")
	case t.IsQuantumType:
		return jen.Id(c.quantumAlias)
	default:
		return jen.Id(t.NativeName)
	}
}

// managedType is the Go type of t in a public parameter list.
func (c typeClassifier) managedType(t metadata.MagickType) *jen.Statement {
	switch {
	case t.HasInstance && c.catalog.IsQuantumType(t.Name):
		return jen.Id("I" + t.Name).Types(jen.Id(c.quantumAlias))
	case t.HasInstance && c.catalog.HasInterface(t.Name):
		return jen.Id("I" + t.Name)
	case t.HasInstance:
		return jen.Op("*").Id(t.Name)
	case t.IsFixed:
		return jen.Index().Add(c.elementType(t))
	case t.IsQuantumType:
		return jen.Id(c.quantumAlias)
	case t.IsString && t.IsNullable:
		return jen.Op("*").String()
	default:
		return jen.Id(t.ManagedName)
	}
}

// resultType is the Go type of t when it is returned to the caller. Handles of
// instance-bearing classes are returned raw; the hand-written wrapper owns them.
// Buffers stay native pointers since their length is not known here.
func (c typeClassifier) resultType(t metadata.MagickType) *jen.Statement {
	switch {
	case t.IsString:
		return jen.String()
	case t.IsFixed:
		return c.nativeType(t)
	case t.HasInstance && !c.isDynamic(t):
		return jen.Uintptr()
	default:
		return c.managedType(t)
	}
}

// zeroValue is returned in place of a result when the native call failed.
func (c typeClassifier) zeroValue(t metadata.MagickType) *jen.Statement {
	switch {
	case t.IsBool:
		return jen.False()
	case t.IsString:
		return jen.Lit("")
	case c.isDynamic(t) || t.IsFixed || t.IsDelegate:
		return jen.Nil()
	default:
		return jen.Lit(0)
	}
}

// toManaged converts a native value of type t to its result type.
func (c typeClassifier) toManaged(t metadata.MagickType, value jen.Code) *jen.Statement {
	switch {
	case t.IsBool:
		return jen.Add(value).Dot("Value").Call()
	case t.IsString:
		return c.native("GoString").Call(value)
	case c.isDynamic(t):
		return jen.Id("new" + t.Name + "FromNative").Call(value)
	case t.HasInstance:
		return jen.Add(value)
	case t.IsEnum:
		return jen.Id(t.ManagedName).Call(value)
	case t.NativeTypeCast != "":
		return jen.Id(t.ManagedName).Call(value)
	default:
		return jen.Add(value)
	}
}
