package parse

import (
	gojaast "github.com/dop251/goja/ast"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

// statement translates one goja statement node. Constructs this
// revision does not support (spec.md's "deliberately unsupported
// syntax" list) fall through to the default case and come back as
// *jsast.Unsupported, which the transform dispatcher turns into a
// fatal, named transform error rather than a silent passthrough.
func (c *converter) statement(s gojaast.Statement) jsast.Node {
	if s == nil {
		return nil
	}

	switch n := s.(type) {
	case *gojaast.BlockStatement:
		return c.blockStatement(n)
	case *gojaast.VariableStatement:
		return c.variableStatement(n)
	case *gojaast.LexicalDeclaration:
		return c.lexicalDeclaration(n)
	case *gojaast.ExpressionStatement:
		out := &jsast.ExpressionStatement{Expression: c.expression(n.Expression)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.EmptyStatement:
		out := &jsast.EmptyStatement{}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.IfStatement:
		out := &jsast.IfStatement{
			Test:       c.expression(n.Test),
			Consequent: c.statement(n.Consequent),
			Alternate:  c.statement(n.Alternate),
		}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.WhileStatement:
		out := &jsast.WhileStatement{Test: c.expression(n.Test), Body: c.statement(n.Body)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.DoWhileStatement:
		out := &jsast.DoWhileStatement{Test: c.expression(n.Test), Body: c.statement(n.Body)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.ForStatement:
		return c.forStatement(n)
	case *gojaast.ForInStatement:
		return c.forInStatement(n)
	case *gojaast.ForOfStatement:
		return c.forOfStatement(n)
	case *gojaast.BranchStatement:
		label := ""
		if n.Label != nil {
			label = string(n.Label.Name)
		}
		if n.Token.String() == "break" {
			out := &jsast.BreakStatement{Label: label}
			out.Loc = c.loc(n.Idx0(), n.Idx1())
			return out
		}
		out := &jsast.ContinueStatement{Label: label}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.LabelledStatement:
		out := &jsast.LabeledStatement{Label: string(n.Label.Name), Body: c.statement(n.Statement)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.SwitchStatement:
		return c.switchStatement(n)
	case *gojaast.ReturnStatement:
		out := &jsast.ReturnStatement{Argument: c.expression(n.Argument)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.ThrowStatement:
		out := &jsast.ThrowStatement{Argument: c.expression(n.Argument)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.TryStatement:
		return c.tryStatement(n)
	case *gojaast.FunctionDeclaration:
		return c.functionDeclaration(n)
	default:
		out := &jsast.Unsupported{ConstructName: gojaKindName(s)}
		out.Loc = c.loc(s.Idx0(), s.Idx1())
		return out
	}
}

func (c *converter) blockStatement(n *gojaast.BlockStatement) *jsast.BlockStatement {
	body := make([]jsast.Node, 0, len(n.List))
	for _, s := range n.List {
		body = append(body, c.statement(s))
	}
	out := &jsast.BlockStatement{Body: body}
	out.Loc = c.loc(n.Idx0(), n.Idx1())
	return out
}

func (c *converter) variableStatement(n *gojaast.VariableStatement) *jsast.VariableDeclaration {
	decl := &jsast.VariableDeclaration{DeclKind: jsast.DeclVar}
	for _, b := range n.List {
		decl.Declarators = append(decl.Declarators, c.binding(b))
	}
	decl.Loc = c.loc(n.Idx0(), n.Idx1())
	return decl
}

func (c *converter) lexicalDeclaration(n *gojaast.LexicalDeclaration) *jsast.VariableDeclaration {
	kind := jsast.DeclLet
	if n.Token.String() == "const" {
		kind = jsast.DeclConst
	}
	decl := &jsast.VariableDeclaration{DeclKind: kind}
	for _, b := range n.List {
		decl.Declarators = append(decl.Declarators, c.binding(b))
	}
	decl.Loc = c.loc(n.Idx0(), n.Idx1())
	return decl
}

func (c *converter) binding(b *gojaast.Binding) *jsast.VariableDeclarator {
	return &jsast.VariableDeclarator{
		ID:   c.bindingTarget(b.Target),
		Init: c.expression(b.Initializer),
	}
}

func (c *converter) forStatement(n *gojaast.ForStatement) *jsast.ForStatement {
	out := &jsast.ForStatement{
		Init:   c.forInitializer(n.Initializer),
		Test:   c.expression(n.Test),
		Update: c.expression(n.Update),
		Body:   c.statement(n.Body),
	}
	out.Loc = c.loc(n.Idx0(), n.Idx1())
	return out
}

// forInitializer handles a missing initializer and the three shapes
// goja's grammar allows in a for-header: a var declaration list, a
// lexical declaration, or a bare expression.
func (c *converter) forInitializer(init gojaast.ForLoopInitializer) jsast.Node {
	switch v := init.(type) {
	case nil:
		return nil
	case *gojaast.ForLoopInitializerVarDeclList:
		decl := &jsast.VariableDeclaration{DeclKind: jsast.DeclVar}
		for _, b := range v.List {
			decl.Declarators = append(decl.Declarators, c.binding(b))
		}
		return decl
	case *gojaast.ForLoopInitializerLexicalDecl:
		return c.lexicalDeclaration(&v.LexicalDeclaration)
	case *gojaast.ForLoopInitializerExpression:
		return c.expression(v.Expression)
	default:
		return &jsast.Unsupported{ConstructName: "for-initializer"}
	}
}

func (c *converter) forInStatement(n *gojaast.ForInStatement) *jsast.ForInStatement {
	left, lexical, isConst := c.forInto(n.Into)
	out := &jsast.ForInStatement{
		Left:      left,
		Right:     c.expression(n.Source),
		Body:      c.statement(n.Body),
		IsLexical: lexical,
		IsConst:   isConst,
	}
	out.Loc = c.loc(n.Idx0(), n.Idx1())
	return out
}

func (c *converter) forOfStatement(n *gojaast.ForOfStatement) *jsast.ForOfStatement {
	left, lexical, isConst := c.forInto(n.Into)
	out := &jsast.ForOfStatement{
		Left:      left,
		Right:     c.expression(n.Source),
		Body:      c.statement(n.Body),
		IsLexical: lexical,
		IsConst:   isConst,
	}
	out.Loc = c.loc(n.Idx0(), n.Idx1())
	return out
}

// forInto translates the binding target of a for-in/for-of head. A
// lexical binding (let/const) opens a fresh frame per iteration; an
// existing-identifier target does not. The second return reports
// whether the binding is lexical, the third whether it is const (only
// meaningful when lexical).
func (c *converter) forInto(into gojaast.ForInto) (jsast.Node, bool, bool) {
	switch v := into.(type) {
	case *gojaast.ForIntoVar:
		return c.bindingTarget(v.Binding.Target), false, false
	case *gojaast.ForIntoExpression:
		return c.expression(v.Expression), false, false
	case *gojaast.ForDeclaration:
		return c.bindingTarget(v.Target), true, v.IsConst
	default:
		return &jsast.Unsupported{ConstructName: "for-in/of target"}, false, false
	}
}

func (c *converter) switchStatement(n *gojaast.SwitchStatement) *jsast.SwitchStatement {
	sw := &jsast.SwitchStatement{Discriminant: c.expression(n.Discriminant)}
	for _, cs := range n.Body {
		consequent := make([]jsast.Node, 0, len(cs.Consequent))
		for _, s := range cs.Consequent {
			consequent = append(consequent, c.statement(s))
		}
		sw.Cases = append(sw.Cases, &jsast.SwitchCase{
			Test:       c.expression(cs.Test),
			Consequent: consequent,
		})
	}
	sw.Loc = c.loc(n.Idx0(), n.Idx1())
	return sw
}

func (c *converter) tryStatement(n *gojaast.TryStatement) *jsast.TryStatement {
	t := &jsast.TryStatement{Block: c.blockStatement(n.Body)}
	if n.Catch != nil {
		t.Handler = &jsast.CatchClause{
			Param: c.bindingTarget(n.Catch.Parameter),
			Body:  c.blockStatement(n.Catch.Body),
		}
	}
	if n.Finally != nil {
		t.Finalizer = c.blockStatement(n.Finally)
	}
	t.Loc = c.loc(n.Idx0(), n.Idx1())
	return t
}
