package generation

import (
	"magickgen/internal/metadata"

	"github.com/dave/jennifer/jen"
)

// argumentList builds the public and native views of an ordered argument list.
// Declaration order is native ABI order in every view.
type argumentList struct {
	typeClassifier
}

// declaration is the public parameter list. Hidden arguments are omitted and
// out arguments are returned as results instead.
func (b argumentList) declaration(arguments []metadata.MagickArgument) []jen.Code {
	params := make([]jen.Code, 0, len(arguments))
	for _, argument := range arguments {
		if argument.IsHidden || argument.IsOut {
			continue
		}
		params = append(params, jen.Id(safeName(argument.Name)).Add(b.managedType(argument.Type)))
	}

	return params
}

// results is the public result list: the return value, the out arguments in
// order and the error of a throwing member.
func (b argumentList) results(returnType metadata.MagickType, arguments []metadata.MagickArgument, throws bool) []jen.Code {
	results := make([]jen.Code, 0)
	if !returnType.IsVoid {
		results = append(results, b.resultType(returnType))
	}
	for _, argument := range arguments {
		if isPublicOut(argument) {
			results = append(results, b.resultType(argument.Type))
		}
	}
	if throws {
		results = append(results, jen.Error())
	}

	return results
}

// zeroResults are the values returned next to a native error.
func (b argumentList) zeroResults(returnType metadata.MagickType, arguments []metadata.MagickArgument) []jen.Code {
	values := make([]jen.Code, 0)
	if !returnType.IsVoid {
		values = append(values, b.zeroValue(returnType))
	}
	for _, argument := range arguments {
		if isPublicOut(argument) {
			values = append(values, b.zeroValue(argument.Type))
		}
	}

	return values
}

// nativeDeclaration is the parameter list of the native entry point. Nothing is
// skipped: the instance handle comes first and the exception pointer last.
func (b argumentList) nativeDeclaration(arguments []metadata.MagickArgument, hasInstance bool, throws bool) []jen.Code {
	params := make([]jen.Code, 0, len(arguments)+2)
	if hasInstance {
		params = append(params, jen.Id("instance").Uintptr())
	}
	for _, argument := range arguments {
		name := safeName(argument.Name)
		if argument.IsOut {
			params = append(params, jen.Id(name).Op("*").Add(b.nativeType(argument.Type)))
		} else {
			params = append(params, jen.Id(name).Add(b.nativeType(argument.Type)))
		}
	}
	if throws {
		params = append(params, jen.Id("exception").Op("*").Uintptr())
	}

	return params
}

// isPublicOut reports whether an out argument is returned to the caller. A
// hidden out argument writes straight into the value it names.
func isPublicOut(argument metadata.MagickArgument) bool {
	return argument.IsOut && !argument.IsHidden
}

// value names an argument inside a generated body. Hidden arguments of
// instance members are fields of the receiver; the hand-written half declares
// them. Hidden arguments of static members live at package scope.
func (b argumentList) value(argument metadata.MagickArgument, onReceiver bool) *jen.Statement {
	name := safeName(argument.Name)
	if argument.IsHidden && onReceiver {
		return jen.Id("n").Dot(name)
	}
	return jen.Id(name)
}

// prologue creates the temporaries the native call needs and defers their release.
func (b argumentList) prologue(g *jen.Group, arguments []metadata.MagickArgument, onReceiver bool) {
	for _, argument := range arguments {
		name := safeName(argument.Name)
		t := argument.Type

		switch {
		case argument.IsOut && argument.IsHidden:
		case argument.IsOut && b.needsCreate(t):
			g.Var().Id(name + "NativeOut").Uintptr()
		case argument.IsOut:
			g.Var().Id(name).Add(b.nativeType(t))
		case t.IsFixed:
			g.Id(name+"Fixed").Op(":=").Add(b.native("Pin")).Call(b.value(argument, onReceiver))
			g.Defer().Id(name + "Fixed").Dot("Unpin").Call()
		case t.IsString && t.IsNullable:
			g.Id(name+"Native").Op(":=").Add(b.native("NewNullableString")).Call(b.value(argument, onReceiver))
			g.Defer().Id(name + "Native").Dot("Dispose").Call()
		case t.IsString:
			g.Id(name+"Native").Op(":=").Add(b.native("NewString")).Call(b.value(argument, onReceiver))
			g.Defer().Id(name + "Native").Dot("Dispose").Call()
		case b.isDynamic(t):
			g.Id(name+"Native").Op(":=").Id("create" + t.Name + "Native").Call(b.value(argument, onReceiver))
			g.Defer().Id(name + "Native").Dot("Dispose").Call()
		}
	}
}

// nativeCall is the argument list of the native call. Every argument is passed,
// hidden ones included, in declaration order. A non-nil instance marks the
// call of an instance member.
func (b argumentList) nativeCall(arguments []metadata.MagickArgument, instance jen.Code, throws bool) []jen.Code {
	values := make([]jen.Code, 0, len(arguments)+2)
	if instance != nil {
		values = append(values, instance)
	}
	for _, argument := range arguments {
		values = append(values, b.nativeArgument(argument, instance != nil))
	}
	if throws {
		values = append(values, jen.Op("&").Id("exception"))
	}

	return values
}

func (b argumentList) nativeArgument(argument metadata.MagickArgument, onReceiver bool) jen.Code {
	name := safeName(argument.Name)
	t := argument.Type

	if argument.IsOut {
		if b.needsCreate(t) && !argument.IsHidden {
			return jen.Op("&").Id(name + "NativeOut")
		}
		return jen.Op("&").Add(b.value(argument, onReceiver))
	}

	switch {
	case t.IsFixed:
		return jen.Id(name + "Fixed").Dot("Pointer").Call()
	case b.needsCreate(t):
		return jen.Id(name + "Native").Dot("Instance").Call()
	case t.HasInstance:
		return jen.Id("get" + t.Name + "Instance").Call(b.value(argument, onReceiver))
	case t.IsBool:
		return b.native("NewBool").Call(b.value(argument, onReceiver))
	case t.IsDelegate:
		return b.native("NewCallback").Call(b.value(argument, onReceiver))
	case t.NativeTypeCast != "":
		return jen.Id(t.NativeTypeCast).Call(b.value(argument, onReceiver))
	default:
		return b.value(argument, onReceiver)
	}
}

// outResults converts the out temporaries after the call.
func (b argumentList) outResults(arguments []metadata.MagickArgument) []jen.Code {
	values := make([]jen.Code, 0)
	for _, argument := range arguments {
		if !isPublicOut(argument) {
			continue
		}

		name := safeName(argument.Name)
		if b.needsCreate(argument.Type) {
			values = append(values, b.toManaged(argument.Type, jen.Id(name+"NativeOut")))
		} else {
			values = append(values, b.toManaged(argument.Type, jen.Id(name)))
		}
	}

	return values
}
