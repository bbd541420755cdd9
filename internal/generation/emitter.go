package generation

import (
	"fmt"

	"magickgen/internal/metadata"

	"github.com/dave/jennifer/jen"
)

const headerComment = "Code generated by magickgen. DO NOT EDIT."

type memberKind int

const (
	kindMethod memberKind = iota
	kindConstructor
	kindDispose
)

// member is one generated function together with its native entry point.
type member struct {
	kind     memberKind
	funcName string
	symbol   string
	procName string
	method   metadata.MagickMethod
	isStatic bool
}

// classEmitter renders the unit of one class. It only reads the class, the
// catalog and the options, so emitting the same class twice yields the same text.
type classEmitter struct {
	argumentList
	class   metadata.MagickClass
	options Options
}

func newClassEmitter(class metadata.MagickClass, catalog *metadata.Catalog, options Options) *classEmitter {
	return &classEmitter{
		argumentList: argumentList{typeClassifier{
			catalog:      catalog,
			nativePath:   options.NativeImport,
			quantumAlias: quantumAliasName(class.Name),
		}},
		class:   class,
		options: options,
	}
}

func (e *classEmitter) Emit() *jen.File {
	file := jen.NewFile(e.options.PackageName)
	file.HeaderComment(headerComment)
	file.ImportName(e.options.NativeImport, "native")

	if e.usesQuantumType() {
		e.writeQuantumType(file)
	}

	members := e.members()
	e.writeProcs(file, members)

	if !e.class.IsStatic {
		e.writeInstance(file)
	}

	for _, m := range members {
		if m.kind == kindDispose {
			e.writeDispose(file, m)
		} else {
			e.writeMember(file, m)
		}
	}

	return file
}

func (e *classEmitter) members() []member {
	class := e.class
	prefix := lowerFirst(class.Name)
	members := make([]member, 0)

	if !class.IsStatic {
		constructor := class.Constructor
		if constructor == nil && class.IsDynamic {
			constructor = &metadata.MagickConstructor{}
		}
		if constructor != nil {
			members = append(members, member{
				kind:     kindConstructor,
				funcName: "createNative" + class.Name,
				symbol:   class.Name + "_Create",
				procName: prefix + "Create",
				method: metadata.MagickMethod{
					Name:       "Create",
					ReturnType: metadata.NewType("void"),
					Arguments:  constructor.Arguments,
					Throws:     constructor.Throws,
				},
				isStatic: true,
			})
		}

		members = append(members, member{
			kind:     kindDispose,
			funcName: "dispose" + class.Name,
			symbol:   class.Name + "_Dispose",
			procName: prefix + "Dispose",
			method:   metadata.MagickMethod{Name: "Dispose", ReturnType: metadata.NewType("void")},
		})
	}

	for _, property := range class.Properties {
		members = append(members, member{
			kind:     kindMethod,
			funcName: e.funcName(property.Name, class.IsStatic),
			symbol:   fmt.Sprintf("%s_%s_Get", class.Name, property.Name),
			procName: prefix + property.Name + "Get",
			method: metadata.MagickMethod{
				Name:       property.Name,
				ReturnType: property.Type,
				Throws:     property.Throws,
			},
			isStatic: class.IsStatic,
		})

		if property.IsReadOnly {
			continue
		}

		members = append(members, member{
			kind:     kindMethod,
			funcName: e.funcName("Set"+property.Name, class.IsStatic),
			symbol:   fmt.Sprintf("%s_%s_Set", class.Name, property.Name),
			procName: prefix + property.Name + "Set",
			method: metadata.MagickMethod{
				Name:       "Set" + property.Name,
				ReturnType: metadata.NewType("void"),
				Arguments:  []metadata.MagickArgument{{Name: "value", Type: property.Type}},
				Throws:     property.Throws,
			},
			isStatic: class.IsStatic,
		})
	}

	for _, method := range class.Methods {
		isStatic := class.IsStatic || method.IsStatic
		members = append(members, member{
			kind:     kindMethod,
			funcName: e.funcName(method.Name, isStatic),
			symbol:   fmt.Sprintf("%s_%s", class.Name, method.Name),
			procName: prefix + method.Name,
			method:   method,
			isStatic: isStatic,
		})
	}

	return members
}

// funcName names static members after their class, since they live at package scope.
func (e *classEmitter) funcName(name string, isStatic bool) string {
	if isStatic {
		return nativeTypeName(e.class.Name) + upperFirst(name)
	}
	return upperFirst(name)
}

// usesQuantumType reports whether the unit refers to its quantum alias. The
// class flag alone does not count: it only makes other units name the class
// through its generic interface.
func (e *classEmitter) usesQuantumType() bool {
	for _, property := range e.class.Properties {
		if e.typeClassifier.usesQuantumType(property.Type) {
			return true
		}
	}

	if e.class.Constructor != nil && e.argumentsUseQuantumType(e.class.Constructor.Arguments) {
		return true
	}

	for _, method := range e.class.Methods {
		if e.typeClassifier.usesQuantumType(method.ReturnType) || e.argumentsUseQuantumType(method.Arguments) {
			return true
		}
	}

	return false
}

func (e *classEmitter) argumentsUseQuantumType(arguments []metadata.MagickArgument) bool {
	for _, argument := range arguments {
		if e.typeClassifier.usesQuantumType(argument.Type) {
			return true
		}
	}
	return false
}

func (e *classEmitter) writeQuantumType(file *jen.File) {
	alias := quantumAliasName(e.class.Name)
	file.Commentf("%s is the pixel channel type of the %s build.", alias, e.options.Quantum)
	file.Type().Id(alias).Op("=").Id(e.options.Quantum.GoType()).Line()
}

// writeProcs declares one native entry point per member and architecture.
func (e *classEmitter) writeProcs(file *jen.File, members []member) {
	if len(members) == 0 {
		return
	}

	file.Var().DefsFunc(func(g *jen.Group) {
		for _, m := range members {
			for _, arch := range e.options.Platform.Architectures() {
				g.Id(m.procName+arch).Op("=").Add(e.native("NewProc")).
					Types(e.nativeSignature(m)).
					Call(jen.Id(libraryName(arch)), jen.Lit(m.symbol))
			}
		}
	}).Line()
}

func (e *classEmitter) nativeSignature(m member) *jen.Statement {
	hasInstance := !m.isStatic || m.kind == kindDispose
	signature := jen.Func().Params(e.nativeDeclaration(m.method.Arguments, hasInstance, m.method.Throws)...)
	if result := e.nativeResultType(m); result != nil {
		signature.Add(result)
	}

	return signature
}

func (e *classEmitter) nativeResultType(m member) *jen.Statement {
	if m.kind == kindConstructor {
		return jen.Uintptr()
	}
	if m.method.ReturnType.IsVoid {
		return nil
	}
	return e.nativeType(m.method.ReturnType)
}

func (e *classEmitter) writeInstance(file *jen.File) {
	name := e.class.Name
	typeName := nativeTypeName(name)

	fields := []jen.Code{e.native("Object")}
	if e.hasReceiverState() {
		fields = append(fields, jen.Id(stateName(name)))
	}

	file.Commentf("%s owns the native handle behind a %s.", typeName, name)
	file.Type().Id(typeName).Struct(fields...).Line()

	file.Func().Id("new"+upperFirst(typeName)).Params(jen.Id("instance").Uintptr()).Op("*").Id(typeName).Block(
		jen.Return(jen.Op("&").Id(typeName).Values(jen.Dict{
			jen.Id("Object"): e.native("NewObject").Call(jen.Id("instance"), jen.Id("dispose"+name)),
		})),
	).Line()

	file.Commentf("get%sInstance resolves the native handle of value; nil resolves to zero.", name)
	file.Func().Id("get"+name+"Instance").Params(jen.Id("value").Add(e.native("Handle"))).Uintptr().Block(
		jen.Return(e.native("GetInstance").Call(jen.Id("value"))),
	).Line()
}

// hasReceiverState reports whether an instance member takes a hidden argument.
// Those arguments are read from a hand-written state struct embedded in the
// native type.
func (e *classEmitter) hasReceiverState() bool {
	for _, method := range e.class.Methods {
		if method.IsStatic {
			continue
		}
		for _, argument := range method.Arguments {
			if argument.IsHidden {
				return true
			}
		}
	}
	return false
}

func (e *classEmitter) writeDispose(file *jen.File, m member) {
	file.Func().Id(m.funcName).Params(jen.Id("instance").Uintptr()).BlockFunc(func(g *jen.Group) {
		e.writeDispatch(g, m.procName, nil, func() []jen.Code {
			return []jen.Code{jen.Id("instance")}
		})
	}).Line()
}

func (e *classEmitter) writeMember(file *jen.File, m member) {
	method := m.method
	typeName := nativeTypeName(e.class.Name)

	var results []jen.Code
	if m.kind == kindConstructor {
		results = []jen.Code{jen.Op("*").Id(typeName)}
		if method.Throws {
			results = append(results, jen.Error())
		}
	} else {
		results = e.results(method.ReturnType, method.Arguments, method.Throws)
	}

	decl := file.Func()
	if !m.isStatic {
		decl.Params(jen.Id("n").Op("*").Id(typeName))
	}
	decl.Id(m.funcName).Params(e.declaration(method.Arguments)...)
	switch len(results) {
	case 0:
	case 1:
		decl.Add(results[0])
	default:
		decl.Params(results...)
	}

	decl.BlockFunc(func(g *jen.Group) {
		e.prologue(g, method.Arguments, !m.isStatic)
		e.writeThrowStart(g, method.Throws)

		e.writeDispatch(g, m.procName, e.nativeResultType(m), func() []jen.Code {
			var instance jen.Code
			if !m.isStatic {
				instance = jen.Id("n").Dot("Instance").Call()
			}
			return e.nativeCall(method.Arguments, instance, method.Throws)
		})

		var values, zeroResults []jen.Code
		if m.kind == kindConstructor {
			values = []jen.Code{jen.Id("new" + upperFirst(typeName)).Call(jen.Id("result"))}
			zeroResults = []jen.Code{jen.Nil()}
		} else {
			if !method.ReturnType.IsVoid {
				values = append(values, e.toManaged(method.ReturnType, jen.Id("result")))
			}
			values = append(values, e.outResults(method.Arguments)...)
			zeroResults = e.zeroResults(method.ReturnType, method.Arguments)
		}

		if !method.Throws {
			if len(values) > 0 {
				g.Return(values...)
			}
			return
		}

		if len(values) == 0 {
			g.Return(e.checkException(m.isStatic))
			return
		}

		e.writeCheckException(g, m.isStatic, zeroResults)
		g.Return(append(values, jen.Nil())...)
	}).Line()
}
