package transform

import (
	"fmt"
	"strings"

	"github.com/dynajs-dev/dynajs/internal/diagnostic"
	"github.com/dynajs-dev/dynajs/internal/jsast"
	"github.com/dynajs-dev/dynajs/internal/scope"
)

// walkStatement writes one statement's instrumented form into s.out.
func (s *State) walkStatement(n jsast.Node) {
	switch st := n.(type) {
	case *jsast.BlockStatement:
		s.blockStatement(st)
	case *jsast.VariableDeclaration:
		s.out.WriteLine(s.variableDeclarationText(st) + ";")
	case *jsast.ExpressionStatement:
		id := s.newID(st)
		val := s.walkExpr(st.Expression)
		s.out.WriteLine(s.emit.ExprResult(id, val) + ";")
	case *jsast.EmptyStatement:
		s.out.WriteLine(";")
	case *jsast.IfStatement:
		s.ifStatement(st)
	case *jsast.WhileStatement:
		s.whileStatement(st)
	case *jsast.DoWhileStatement:
		s.doWhileStatement(st)
	case *jsast.ForStatement:
		s.forStatement(st)
	case *jsast.ForInStatement:
		s.forInOfStatement(st)
	case *jsast.ForOfStatement:
		s.forInOfStatement(st)
	case *jsast.BreakStatement:
		if st.Label != "" {
			s.out.WriteLine("break " + st.Label + ";")
		} else {
			s.out.WriteLine("break;")
		}
	case *jsast.ContinueStatement:
		if st.Label != "" {
			s.out.WriteLine("continue " + st.Label + ";")
		} else {
			s.out.WriteLine("continue;")
		}
	case *jsast.LabeledStatement:
		s.out.WriteString(st.Label + ": ")
		s.walkStatement(st.Body)
	case *jsast.SwitchStatement:
		s.switchStatement(st)
	case *jsast.ReturnStatement:
		s.returnStatement(st)
	case *jsast.ThrowStatement:
		s.throwStatement(st)
	case *jsast.TryStatement:
		s.tryStatement(st)
	case *jsast.FunctionDeclaration:
		s.functionDeclaration(st)
	case *jsast.Unsupported:
		diagnostic.Fail(posOf(st), st.ConstructName, "construct is not supported by this revision of the transformer")
	default:
		diagnostic.Fail(posOf(st), fmt.Sprintf("%T", st), "statement kind has no visitor")
	}
}

// writeStatementBody renders a loop/if body uniformly as a braced
// block. A bare (non-block) body can never itself introduce a
// let/const binding in valid source, so wrapping it in braces here
// does not need its own lexical frame.
func (s *State) writeStatementBody(n jsast.Node) {
	if blk, ok := n.(*jsast.BlockStatement); ok {
		s.blockStatement(blk)
		return
	}
	s.out.WriteLine("{")
	s.out.Indent()
	s.walkStatement(n)
	s.out.Dedent()
	s.out.WriteLine("}")
}

func (s *State) blockStatement(n *jsast.BlockStatement) {
	outer := s.scope
	s.scope = scope.AnalyzeBlock(outer, n.Body)
	s.out.WriteLine("{")
	s.out.Indent()
	s.emitDeclares()
	for _, stmt := range n.Body {
		s.walkStatement(stmt)
	}
	s.out.Dedent()
	s.out.WriteLine("}")
	s.scope = outer
}

func (s *State) variableDeclarationText(n *jsast.VariableDeclaration) string {
	parts := make([]string, len(n.Declarators))
	for i, d := range n.Declarators {
		parts[i] = s.variableDeclarator(d)
	}
	return keywordFor(n.DeclKind) + " " + strings.Join(parts, ", ")
}

// variableDeclarator renders one `name` or `name = W(id, [names], E(...))`
// declarator. A declarator without an initializer just threads its
// pattern through in LHS context; the scope's declare hook already
// reported its existence when the enclosing region's frame was opened.
func (s *State) variableDeclarator(d *jsast.VariableDeclarator) string {
	lhsText := s.patternText(d.ID)
	if d.Init == nil {
		return lhsText
	}
	id := s.newID(d)
	exprID := s.newID(d.Init)
	initVal := s.emit.ExprResult(exprID, s.walkExpr(d.Init))
	names := scope.CollectIdentifiers(d.ID)
	write := s.emit.Write(id, names, initVal)
	return lhsText + " = " + write
}

func (s *State) ifStatement(n *jsast.IfStatement) {
	id := s.newID(n)
	testID := s.newID(n.Test)
	testVal := s.emit.ExprResult(testID, s.walkExpr(n.Test))
	cond := s.emit.Condition(id, "if", testVal)
	s.out.WriteString("if (" + cond + ") ")
	s.writeStatementBody(n.Consequent)
	if n.Alternate != nil {
		s.out.WriteString("else ")
		s.writeStatementBody(n.Alternate)
	}
}

func (s *State) whileStatement(n *jsast.WhileStatement) {
	id := s.newID(n)
	testID := s.newID(n.Test)
	testVal := s.emit.ExprResult(testID, s.walkExpr(n.Test))
	cond := s.emit.Condition(id, "while", testVal)
	s.out.WriteString("while (" + cond + ") ")
	s.writeStatementBody(n.Body)
}

func (s *State) doWhileStatement(n *jsast.DoWhileStatement) {
	s.out.WriteString("do ")
	s.writeStatementBody(n.Body)
	id := s.newID(n)
	testID := s.newID(n.Test)
	testVal := s.emit.ExprResult(testID, s.walkExpr(n.Test))
	cond := s.emit.Condition(id, "do-while", testVal)
	s.out.WriteLine("while (" + cond + ");")
}

func (s *State) forStatement(n *jsast.ForStatement) {
	if decl, ok := n.Init.(*jsast.VariableDeclaration); ok && decl.DeclKind != jsast.DeclVar {
		s.forStatementLexical(n, decl)
		return
	}
	s.forStatementPlain(n)
}

func (s *State) forInitText(n jsast.Node) string {
	if decl, ok := n.(*jsast.VariableDeclaration); ok {
		return s.variableDeclarationText(decl)
	}
	return s.walkExpr(n)
}

func (s *State) forTestText(n *jsast.ForStatement) string {
	if n.Test == nil {
		return ""
	}
	condID := s.newID(n)
	exprID := s.newID(n.Test)
	testVal := s.emit.ExprResult(exprID, s.walkExpr(n.Test))
	return s.emit.Condition(condID, "for", testVal)
}

func (s *State) forStatementPlain(n *jsast.ForStatement) {
	initText := ""
	if n.Init != nil {
		initText = s.forInitText(n.Init)
	}
	testText := s.forTestText(n)
	updateText := ""
	if n.Update != nil {
		updateText = s.walkExpr(n.Update)
	}
	s.out.WriteString(fmt.Sprintf("for (%s; %s; %s) ", initText, testText, updateText))
	s.writeStatementBody(n.Body)
}

// forStatementLexical implements the synthesized-outer-block pattern
// for a `for` header with a let/const initializer: an outer frame
// declares the binding once, and a fresh inner frame re-declares it on
// every iteration so each iteration's closures capture a distinct
// binding.
func (s *State) forStatementLexical(n *jsast.ForStatement, decl *jsast.VariableDeclaration) {
	outer := s.scope
	names := declaredNames(decl)
	kind := kindFor(decl.DeclKind)

	headerFrame := scope.NewForHeaderFrame(outer, names, kind)
	s.scope = headerFrame
	s.out.WriteLine("{")
	s.out.Indent()
	s.emitDeclares()

	initText := s.variableDeclarationText(decl)
	testText := s.forTestText(n)
	updateText := ""
	if n.Update != nil {
		updateText = s.walkExpr(n.Update)
	}
	s.out.WriteString(fmt.Sprintf("for (%s; %s; %s) ", initText, testText, updateText))

	s.out.WriteLine("{")
	s.out.Indent()
	innerFrame := scope.NewForHeaderFrame(headerFrame, names, kind)
	s.scope = innerFrame
	s.emitDeclares()
	if blk, ok := n.Body.(*jsast.BlockStatement); ok {
		s.scope = scope.AnalyzeBlock(innerFrame, blk.Body)
		s.emitDeclares()
		for _, stmt := range blk.Body {
			s.walkStatement(stmt)
		}
	} else {
		s.walkStatement(n.Body)
	}
	s.out.Dedent()
	s.out.WriteLine("}")
	s.out.Dedent()
	s.out.WriteLine("}")
	s.scope = outer
}

func (s *State) forInOfStatement(n jsast.Node) {
	var left, right, body jsast.Node
	var isLexical, isConst, isForIn bool
	switch t := n.(type) {
	case *jsast.ForInStatement:
		left, right, body, isLexical, isConst, isForIn = t.Left, t.Right, t.Body, t.IsLexical, t.IsConst, true
	case *jsast.ForOfStatement:
		left, right, body, isLexical, isConst, isForIn = t.Left, t.Right, t.Body, t.IsLexical, t.IsConst, false
	}

	id := s.newID(n)
	rhsVal := s.walkExpr(right)
	objVal := s.emit.ForObject(id, rhsVal, isForIn)
	temp := s.nextTemp()
	keyword := "of"
	if isForIn {
		keyword = "in"
	}

	var targetNode jsast.Node
	var names []string
	if decl, ok := left.(*jsast.VariableDeclaration); ok {
		targetNode = decl.Declarators[0].ID
	} else {
		targetNode = left
	}
	names = scope.CollectIdentifiers(targetNode)

	lexicalKind := scope.Let
	if isConst {
		lexicalKind = scope.Const
	}

	outer := s.scope
	var headerFrame *scope.Frame
	if isLexical {
		headerFrame = scope.NewForHeaderFrame(outer, names, lexicalKind)
		s.scope = headerFrame
	}

	// temp is a property slot on the runtime global (<runtimeGlobal>._tN),
	// not a declarable binding: the header assigns it, it never declares it.
	s.out.WriteString(fmt.Sprintf("for (%s %s %s) ", temp, keyword, objVal))
	s.out.WriteLine("{")
	s.out.Indent()
	if isLexical {
		s.scope = scope.NewForHeaderFrame(headerFrame, names, lexicalKind)
		s.emitDeclares()
	}
	writeID := s.newID(nil)
	assign := s.emit.Write(writeID, names, temp)
	s.out.WriteLine(fmt.Sprintf("%s = %s;", s.patternText(targetNode), assign))
	s.writeStatementBody(body)
	s.out.Dedent()
	s.out.WriteLine("}")
	s.scope = outer
}

func (s *State) switchStatement(n *jsast.SwitchStatement) {
	id := s.newID(n)
	discExprID := s.newID(n.Discriminant)
	discVal := s.emit.ExprResult(discExprID, s.walkExpr(n.Discriminant))
	s.out.WriteLine(s.emit.SwitchLeft(id, discVal) + ";")

	outer := s.scope
	s.scope = scope.AnalyzeSwitchBody(outer, n.Cases)
	s.out.WriteLine("switch (true) {")
	s.out.Indent()
	s.emitDeclares()
	for _, c := range n.Cases {
		if c.Test == nil {
			s.out.WriteLine("default:")
		} else {
			caseID := s.newID(c)
			caseExprID := s.newID(c.Test)
			caseVal := s.emit.ExprResult(caseExprID, s.walkExpr(c.Test))
			s.out.WriteLine("case " + s.emit.SwitchRight(caseID, caseVal) + ":")
		}
		s.out.Indent()
		for _, stmt := range c.Consequent {
			s.walkStatement(stmt)
		}
		s.out.Dedent()
	}
	s.out.Dedent()
	s.out.WriteLine("}")
	s.scope = outer
}

func (s *State) returnStatement(n *jsast.ReturnStatement) {
	id := s.newID(n)
	if n.Argument == nil {
		s.out.WriteLine("return " + s.emit.Return(id, "undefined") + ";")
		return
	}
	exprID := s.newID(n.Argument)
	val := s.emit.ExprResult(exprID, s.walkExpr(n.Argument))
	s.out.WriteLine("return " + s.emit.Return(id, val) + ";")
}

func (s *State) throwStatement(n *jsast.ThrowStatement) {
	id := s.newID(n)
	exprID := s.newID(n.Argument)
	val := s.emit.ExprResult(exprID, s.walkExpr(n.Argument))
	s.out.WriteLine("throw " + s.emit.Throw(id, val) + ";")
}

func (s *State) tryStatement(n *jsast.TryStatement) {
	s.out.WriteString("try ")
	s.blockStatement(n.Block)

	if n.Handler != nil {
		s.out.WriteString("catch (")
		paramText := ""
		if n.Handler.Param != nil {
			paramText = s.patternText(n.Handler.Param)
		}
		s.out.WriteString(paramText + ") ")

		outer := s.scope
		s.scope = scope.AnalyzeCatch(outer, n.Handler.Param, n.Handler.Body.Body)
		s.out.WriteLine("{")
		s.out.Indent()
		s.emitDeclares()
		for _, stmt := range n.Handler.Body.Body {
			s.walkStatement(stmt)
		}
		s.out.Dedent()
		s.out.WriteLine("}")
		s.scope = outer
	}

	if n.Finalizer != nil {
		s.out.WriteString("finally ")
		s.blockStatement(n.Finalizer)
	}
}
