package transform

import (
	"fmt"
	"strings"

	"github.com/dynajs-dev/dynajs/internal/jsast"
	"github.com/dynajs-dev/dynajs/internal/scope"
)

// functionHeader renders the `[async ]function[*] [name](params)` text
// shared by declarations and expressions. Parameters are binding
// patterns, rendered in LHS context.
func (s *State) functionHeader(name string, params []jsast.Node, async, generator bool) string {
	var b strings.Builder
	if async {
		b.WriteString("async ")
	}
	b.WriteString("function")
	if generator {
		b.WriteString("*")
	}
	if name != "" {
		b.WriteString(" ")
		b.WriteString(name)
	}
	b.WriteString("(")
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = s.patternText(p)
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(")")
	return b.String()
}

// emitFunctionBody writes the function body's brace block: the try
// scaffold carrying function enter/exit and uncaught-exception hooks,
// the declare hooks for arguments/params/selfBindName and every
// hoisted/lexical name, then the body's statements. selfBindName seeds
// a Func binding inside the body's own frame and must be "" except for
// a named function expression — a function declaration's name binds in
// the enclosing scope, not inside its own body.
func (s *State) emitFunctionBody(id int, selfBindName string, params []jsast.Node, body *jsast.BlockStatement) {
	outer := s.scope
	s.scope = scope.AnalyzeFunction(outer, selfBindName, params, body.Body)

	s.out.WriteLine("{")
	s.out.Indent()
	s.out.WriteLine("try {")
	s.out.Indent()
	s.out.WriteLine(s.emit.FuncEnter(id, "arguments.callee", "this", "arguments") + ";")
	s.emitDeclares()
	for _, stmt := range body.Body {
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
	s.out.WriteLine(s.emit.FuncExit(id) + ";")
	s.out.Dedent()
	s.out.WriteLine("}")
	s.out.Dedent()
	s.out.WriteLine("}")

	s.scope = outer
}

func (s *State) functionDeclaration(n *jsast.FunctionDeclaration) {
	id := s.newID(n)
	header := s.functionHeader(n.Name.Name, n.Params, n.Async, n.Generator)
	bodyText := s.captureBlock(func() {
		s.emitFunctionBody(id, "", n.Params, n.Body)
	})
	s.out.WriteLine(header + " " + bodyText)
}

// functionExpression renders the function as an expression and wraps
// it in a literal-value hook: a function expression's mere existence
// at this point in the walk is itself a reportable event.
func (s *State) functionExpression(n *jsast.FunctionExpression) string {
	id := s.newID(n)
	name := ""
	if n.Name != nil {
		name = n.Name.Name
	}
	header := s.functionHeader(name, n.Params, n.Async, n.Generator)
	bodyText := s.captureBlock(func() {
		s.emitFunctionBody(id, name, n.Params, n.Body)
	})
	litID := s.newID(nil)
	return s.emit.LiteralValue(litID, fmt.Sprintf("(%s %s)", header, bodyText))
}
