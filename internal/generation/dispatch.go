package generation

import (
	"github.com/dave/jennifer/jen"
)

// archCheck is the run-time test selecting an architecture in a multi-arch
// build. The last architecture is the fallback and has no test.
var archCheck = map[string]string{
	"ARM64": "IsArm64",
	"X64":   "Is64Bit",
}

// writeDispatch emits the call of one native entry point. A single-arch build
// calls its entry point directly; a multi-arch build checks the running
// architecture, most specific first.
func (e *classEmitter) writeDispatch(g *jen.Group, procName string, resultType *jen.Statement, args func() []jen.Code) {
	call := func(arch string) *jen.Statement {
		return jen.Id(procName + arch).Dot("Get").Call().Call(args()...)
	}

	architectures := e.options.Platform.Architectures()
	if len(architectures) == 1 {
		if resultType != nil {
			g.Id("result").Op(":=").Add(call(architectures[0]))
		} else {
			g.Add(call(architectures[0]))
		}
		return
	}

	if resultType != nil {
		g.Var().Id("result").Add(resultType)
	}

	branch := func(arch string) jen.Code {
		if resultType != nil {
			return jen.Id("result").Op("=").Add(call(arch))
		}
		return call(arch)
	}

	var statement *jen.Statement
	for i, arch := range architectures {
		last := i == len(architectures)-1
		switch {
		case i == 0:
			statement = jen.If(e.native(archCheck[arch]).Call()).Block(branch(arch))
		case last:
			statement.Else().Block(branch(arch))
		default:
			statement.Else().If(e.native(archCheck[arch]).Call()).Block(branch(arch))
		}
	}
	g.Add(statement)
}

// checkException is the propagation routine of a throwing member: the static
// routine for static members, the instance-bound one otherwise.
func (e *classEmitter) checkException(isStatic bool) *jen.Statement {
	if isStatic {
		return e.native("CheckException").Call(jen.Id("exception"))
	}
	return jen.Id("n").Dot("CheckException").Call(jen.Id("exception"))
}

func (e *classEmitter) writeCheckException(g *jen.Group, isStatic bool, zeroResults []jen.Code) {
	g.If(jen.Err().Op(":=").Add(e.checkException(isStatic)), jen.Err().Op("!=").Nil()).Block(
		jen.Return(append(zeroResults, jen.Err())...),
	)
}

func (e *classEmitter) writeThrowStart(g *jen.Group, throws bool) {
	if throws {
		g.Var().Id("exception").Uintptr()
	}
}
