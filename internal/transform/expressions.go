package transform

import (
	"fmt"
	"strings"

	"github.com/dynajs-dev/dynajs/internal/codegen"
	"github.com/dynajs-dev/dynajs/internal/diagnostic"
	"github.com/dynajs-dev/dynajs/internal/jsast"
	"github.com/dynajs-dev/dynajs/internal/scope"
)

// walkExpr returns the instrumented text of an expression. Hook calls
// are composed textually: an expression's fragment embeds the already-
// walked text of its children, so the only buffer writes in this file
// happen for function expression bodies via captureBlock.
func (s *State) walkExpr(n jsast.Node) string {
	switch e := n.(type) {
	case nil:
		return ""
	case *jsast.Identifier:
		if s.lhs {
			return e.Name
		}
		id := s.newID(e)
		return s.emit.Read(id, e.Name)
	case *jsast.Literal:
		id := s.newID(e)
		return s.emit.Literal(id, e.Raw, codegen.LiteralTypeCode(e.LitKind))
	case *jsast.BinaryExpression:
		id := s.newID(e)
		left := s.walkExpr(e.Left)
		right := s.walkExpr(e.Right)
		return s.emit.Binary(id, e.Operator, left, right)
	case *jsast.LogicalExpression:
		id := s.newID(e)
		left := s.walkExpr(e.Left)
		right := s.walkExpr(e.Right)
		cond := s.emit.Condition(id, e.Operator, left)
		return fmt.Sprintf("(%s %s %s)", cond, e.Operator, right)
	case *jsast.UnaryExpression:
		return s.unaryExpr(e)
	case *jsast.UpdateExpression:
		return s.updateExpr(e)
	case *jsast.AssignmentExpression:
		return s.assignmentExpr(e)
	case *jsast.ConditionalExpression:
		id := s.newID(e)
		test := s.walkExpr(e.Test)
		cons := s.walkExpr(e.Consequent)
		alt := s.walkExpr(e.Alternate)
		cond := s.emit.Condition(id, "?", test)
		return fmt.Sprintf("(%s ? %s : %s)", cond, cons, alt)
	case *jsast.SequenceExpression:
		parts := make([]string, len(e.Expressions))
		for i, x := range e.Expressions {
			parts[i] = s.walkExpr(x)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *jsast.MemberExpression:
		id := s.newID(e)
		base := s.walkExpr(e.Object)
		prop := s.propertyText(e)
		return s.emit.GetField(id, base, prop)
	case *jsast.CallExpression:
		return s.callExpr(e)
	case *jsast.FunctionExpression:
		return s.functionExpression(e)
	case *jsast.Unsupported:
		diagnostic.Fail(posOf(e), e.ConstructName, "construct is not supported by this revision of the transformer")
		return ""
	default:
		diagnostic.Fail(posOf(e), fmt.Sprintf("%T", e), "expression kind has no visitor")
		return ""
	}
}

// propertyText renders a MemberExpression's property in read position:
// a quoted string for a non-computed (dotted) identifier property, or
// the walked expression for a computed (bracketed) one.
func (s *State) propertyText(mem *jsast.MemberExpression) string {
	if mem.Computed {
		return s.walkExpr(mem.Property)
	}
	ident := mem.Property.(*jsast.Identifier)
	return codegen.Quote(ident.Name)
}

// memberAccessorDirect renders base.prop / base[prop] syntax using
// baseText as the already-evaluated base, without going through the
// get-field hook — used when the member expression is itself an
// assignment or update target, where the base is captured once into a
// temporary and the write uses plain property syntax.
func (s *State) memberAccessorDirect(mem *jsast.MemberExpression, baseText string) string {
	if mem.Computed {
		return fmt.Sprintf("%s[%s]", baseText, s.walkExpr(mem.Property))
	}
	ident := mem.Property.(*jsast.Identifier)
	return fmt.Sprintf("%s.%s", baseText, ident.Name)
}

func (s *State) unaryExpr(n *jsast.UnaryExpression) string {
	if n.Operator == "delete" {
		return s.deleteExpr(n)
	}
	id := s.newID(n)
	arg := s.walkExpr(n.Argument)
	return s.emit.Unary(id, n.Operator, arg)
}

func (s *State) deleteExpr(n *jsast.UnaryExpression) string {
	mem, ok := n.Argument.(*jsast.MemberExpression)
	if !ok {
		diagnostic.Fail(posOf(n), "UnaryExpression(delete)", "delete target must be a member expression")
	}
	id := s.newID(n)
	base := s.walkExpr(mem.Object)
	prop := s.propertyText(mem)
	return s.emit.Delete(id, base, prop)
}

// targetReference renders an update/assignment target's current value
// without going through the read hook; the Up hook's synthesized
// binary pre/post is what observes the read.
func (s *State) targetReference(n jsast.Node) string {
	switch t := n.(type) {
	case *jsast.Identifier:
		return t.Name
	case *jsast.MemberExpression:
		base := s.walkExpr(t.Object)
		return s.memberAccessorDirect(t, base)
	default:
		diagnostic.Fail(posOf(n), fmt.Sprintf("%T", n), "unsupported update target")
		return ""
	}
}

func (s *State) updateExpr(n *jsast.UpdateExpression) string {
	id := s.newID(n)
	binaryID := s.newID(nil)
	argText := s.targetReference(n.Argument)
	writerText := s.updateWriter(n.Argument)
	return s.emit.Update(id, binaryID, n.Operator, n.Prefix, argText, writerText)
}

// updateWriter builds the closure text Up's runtime side invokes to
// perform the original target's update and emit the matching W/P hook.
func (s *State) updateWriter(n jsast.Node) string {
	writeID := s.newID(nil)
	switch t := n.(type) {
	case *jsast.Identifier:
		write := s.emit.Write(writeID, []string{t.Name}, "$v")
		return fmt.Sprintf("function($v){ return (%s = %s); }", t.Name, write)
	case *jsast.MemberExpression:
		baseTemp := s.nextTemp()
		baseVal := s.walkExpr(t.Object)
		prop := s.propertyText(t)
		accessor := s.memberAccessorDirect(t, baseTemp)
		put := s.emit.PutField(writeID, baseTemp, prop, "$v")
		return fmt.Sprintf("function($v){ %s = %s; return (%s = %s); }", baseTemp, baseVal, accessor, put)
	default:
		diagnostic.Fail(posOf(n), fmt.Sprintf("%T", n), "unsupported update target")
		return ""
	}
}

func (s *State) assignmentExpr(n *jsast.AssignmentExpression) string {
	id := s.newID(n)
	rhsID := s.newID(n.Right)
	rhsVal := s.emit.ExprResult(rhsID, s.walkExpr(n.Right))

	if mem, ok := n.Left.(*jsast.MemberExpression); ok {
		return s.memberWrite(id, mem, rhsVal)
	}

	names := scope.CollectIdentifiers(n.Left)
	lhsText := s.patternText(n.Left)
	write := s.emit.Write(id, names, rhsVal)
	return fmt.Sprintf("(%s = %s)", lhsText, write)
}

// memberWrite renders a put-field assignment, capturing the base once
// into a temporary so it is evaluated exactly once regardless of the
// hook call reading it again.
func (s *State) memberWrite(id int, mem *jsast.MemberExpression, rhsVal string) string {
	baseTemp := s.nextTemp()
	baseVal := s.walkExpr(mem.Object)

	if mem.Computed {
		propTemp := s.nextTemp()
		propVal := s.walkExpr(mem.Property)
		accessor := fmt.Sprintf("%s[%s]", baseTemp, propTemp)
		put := s.emit.PutField(id, baseTemp, propTemp, rhsVal)
		return fmt.Sprintf("(%s = %s, %s = %s, %s = %s)", baseTemp, baseVal, propTemp, propVal, accessor, put)
	}

	ident := mem.Property.(*jsast.Identifier)
	prop := codegen.Quote(ident.Name)
	accessor := fmt.Sprintf("%s.%s", baseTemp, ident.Name)
	put := s.emit.PutField(id, baseTemp, prop, rhsVal)
	return fmt.Sprintf("(%s = %s, %s = %s)", baseTemp, baseVal, accessor, put)
}

func (s *State) callExpr(n *jsast.CallExpression) string {
	id := s.newID(n)
	argsText := make([]string, len(n.Args))
	for i, a := range n.Args {
		argID := s.newID(a)
		argsText[i] = s.emit.ExprResult(argID, s.walkExpr(a))
	}
	joinedArgs := strings.Join(argsText, ", ")

	if mem, ok := n.Callee.(*jsast.MemberExpression); ok {
		baseTemp := s.nextTemp()
		baseVal := s.walkExpr(mem.Object)
		prop := s.propertyText(mem)
		wrapper := s.emit.BuildMethodWrapper(id, baseTemp, prop, n.IsNew)
		return fmt.Sprintf("(%s = %s, %s(%s))", baseTemp, baseVal, wrapper, joinedArgs)
	}

	calleeVal := s.walkExpr(n.Callee)
	wrapper := s.emit.BuildCallWrapper(id, calleeVal, n.IsNew)
	return fmt.Sprintf("%s(%s)", wrapper, joinedArgs)
}
