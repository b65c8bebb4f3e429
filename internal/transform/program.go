package transform

import (
	"github.com/dynajs-dev/dynajs/internal/jsast"
	"github.com/dynajs-dev/dynajs/internal/scope"
)

// program writes the instrumented body of a whole file: a program-
// level scope holding every top-level var/function/let/const name, a
// try/catch/finally scaffold reporting script enter/exit and any
// exception that escapes every statement, and the statements
// themselves.
func (s *State) program(prog *jsast.Program) {
	id := s.newID(prog)
	s.scope = scope.AnalyzeProgram(prog.Body)

	s.out.WriteLine("try {")
	s.out.Indent()
	s.out.WriteLine(s.emit.ScriptEnter(id, s.instPath, s.origPath) + ";")
	s.emitDeclares()
	for _, stmt := range prog.Body {
		s.walkStatement(stmt)
	}
	s.out.Dedent()
	s.out.WriteLine("} catch (e) {")
	s.out.Indent()
	s.out.WriteLine(s.emit.Uncaught(id, "e") + ";")
	s.out.WriteLine("throw e;")
	s.out.Dedent()
	s.out.WriteLine("} finally {")
	s.out.Indent()
	s.out.WriteLine(s.emit.ScriptExit(id) + ";")
	s.out.Dedent()
	s.out.WriteLine("}")
}
