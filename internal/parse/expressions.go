package parse

import (
	"fmt"

	gojaast "github.com/dop251/goja/ast"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

func (c *converter) expression(e gojaast.Expression) jsast.Node {
	if e == nil {
		return nil
	}

	switch n := e.(type) {
	case *gojaast.Identifier:
		out := &jsast.Identifier{Name: string(n.Name)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.StringLiteral:
		out := &jsast.Literal{LitKind: jsast.LiteralString, Raw: n.Literal, Value: string(n.Value)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.NumberLiteral:
		out := &jsast.Literal{LitKind: jsast.LiteralNumber, Raw: n.Literal, Value: n.Value}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.BooleanLiteral:
		out := &jsast.Literal{LitKind: jsast.LiteralBoolean, Raw: n.Literal, Value: n.Value}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.NullLiteral:
		out := &jsast.Literal{LitKind: jsast.LiteralNull, Raw: n.Literal, Value: nil}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.RegExpLiteral:
		out := &jsast.Literal{LitKind: jsast.LiteralRegExp, Raw: n.Literal, Value: n.Literal}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.BinaryExpression:
		op := n.Operator.String()
		if op == "&&" || op == "||" {
			out := &jsast.LogicalExpression{Operator: op, Left: c.expression(n.Left), Right: c.expression(n.Right)}
			out.Loc = c.loc(n.Idx0(), n.Idx1())
			return out
		}
		out := &jsast.BinaryExpression{Operator: op, Left: c.expression(n.Left), Right: c.expression(n.Right)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.UnaryExpression:
		op := n.Operator.String()
		if op == "++" || op == "--" {
			out := &jsast.UpdateExpression{Operator: op, Argument: c.expression(n.Operand), Prefix: !n.Postfix}
			out.Loc = c.loc(n.Idx0(), n.Idx1())
			return out
		}
		out := &jsast.UnaryExpression{Operator: op, Argument: c.expression(n.Operand)}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.AssignExpression:
		return c.assignExpression(n)
	case *gojaast.ConditionalExpression:
		out := &jsast.ConditionalExpression{
			Test:       c.expression(n.Test),
			Consequent: c.expression(n.Consequent),
			Alternate:  c.expression(n.Alternate),
		}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.SequenceExpression:
		exprs := make([]jsast.Node, 0, len(n.Sequence))
		for _, s := range n.Sequence {
			exprs = append(exprs, c.expression(s))
		}
		out := &jsast.SequenceExpression{Expressions: exprs}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.DotExpression:
		out := &jsast.MemberExpression{
			Object:   c.expression(n.Left),
			Property: &jsast.Identifier{Name: string(n.Identifier.Name)},
			Computed: false,
		}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.BracketExpression:
		out := &jsast.MemberExpression{
			Object:   c.expression(n.Left),
			Property: c.expression(n.Member),
			Computed: true,
		}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.CallExpression:
		args := make([]jsast.Node, 0, len(n.ArgumentList))
		for _, a := range n.ArgumentList {
			args = append(args, c.expression(a))
		}
		out := &jsast.CallExpression{Callee: c.expression(n.Callee), Args: args, IsNew: false}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.NewExpression:
		args := make([]jsast.Node, 0, len(n.ArgumentList))
		for _, a := range n.ArgumentList {
			args = append(args, c.expression(a))
		}
		out := &jsast.CallExpression{Callee: c.expression(n.Callee), Args: args, IsNew: true}
		out.Loc = c.loc(n.Idx0(), n.Idx1())
		return out
	case *gojaast.FunctionLiteral:
		return c.functionExpression(n)
	default:
		out := &jsast.Unsupported{ConstructName: gojaKindName(e)}
		out.Loc = c.loc(e.Idx0(), e.Idx1())
		return out
	}
}

// assignExpression desugars compound assignment operators (+=, -=, ...)
// into `target = target op value` under the caller's single id, per the
// Open Question resolved in SPEC_FULL.md section 4.
func (c *converter) assignExpression(n *gojaast.AssignExpression) jsast.Node {
	left := c.expression(n.Left)
	right := c.expression(n.Right)
	op := n.Operator.String()

	out := &jsast.AssignmentExpression{Left: left}
	if op == "=" {
		out.Right = right
	} else {
		binOp := op
		if len(op) > 1 && op[len(op)-1] == '=' {
			binOp = op[:len(op)-1]
		}
		out.Right = &jsast.BinaryExpression{Operator: binOp, Left: left, Right: right}
	}
	out.Loc = c.loc(n.Idx0(), n.Idx1())
	return out
}

// bindingTarget translates a binding pattern: a plain identifier, an
// object/array destructuring pattern, or a defaulted pattern.
func (c *converter) bindingTarget(t gojaast.Expression) jsast.Node {
	switch v := t.(type) {
	case nil:
		return nil
	case *gojaast.Identifier:
		out := &jsast.Identifier{Name: string(v.Name)}
		out.Loc = c.loc(v.Idx0(), v.Idx1())
		return out
	case *gojaast.ObjectPattern:
		return c.objectPattern(v)
	case *gojaast.ArrayPattern:
		return c.arrayPattern(v)
	case *gojaast.AssignExpression:
		out := &jsast.AssignmentPattern{Left: c.bindingTarget(v.Left), Default: c.expression(v.Right)}
		out.Loc = c.loc(v.Idx0(), v.Idx1())
		return out
	default:
		return &jsast.Unsupported{ConstructName: fmt.Sprintf("binding-target(%T)", v)}
	}
}

func (c *converter) objectPattern(n *gojaast.ObjectPattern) *jsast.ObjectPattern {
	out := &jsast.ObjectPattern{}
	for _, prop := range n.Properties {
		switch p := prop.(type) {
		case *gojaast.PropertyShort:
			name := string(p.Name.Name)
			var value jsast.Node = &jsast.Identifier{Name: name}
			if p.Initializer != nil {
				value = &jsast.AssignmentPattern{Left: value, Default: c.expression(p.Initializer)}
			}
			out.Properties = append(out.Properties, &jsast.ObjectProperty{Key: name, Value: value})
		case *gojaast.PropertyKeyed:
			key := propertyKeyName(p.Key)
			out.Properties = append(out.Properties, &jsast.ObjectProperty{Key: key, Value: c.bindingTarget(p.Value)})
		}
	}
	if n.Rest != nil {
		out.Rest = c.bindingTarget(n.Rest)
	}
	out.Loc = c.loc(n.Idx0(), n.Idx1())
	return out
}

func (c *converter) arrayPattern(n *gojaast.ArrayPattern) *jsast.ArrayPattern {
	out := &jsast.ArrayPattern{}
	for _, el := range n.Elements {
		if el == nil {
			out.Elements = append(out.Elements, nil)
			continue
		}
		out.Elements = append(out.Elements, c.bindingTarget(el))
	}
	if n.Rest != nil {
		out.Rest = c.bindingTarget(n.Rest)
	}
	out.Loc = c.loc(n.Idx0(), n.Idx1())
	return out
}

// propertyKeyName extracts a string key name from a property key
// expression; only identifier and string-literal keys are supported in
// a binding-pattern position.
func propertyKeyName(key gojaast.Expression) string {
	switch k := key.(type) {
	case *gojaast.Identifier:
		return string(k.Name)
	case *gojaast.StringLiteral:
		return string(k.Value)
	default:
		return ""
	}
}

func (c *converter) functionDeclaration(n *gojaast.FunctionDeclaration) *jsast.FunctionDeclaration {
	fn := n.Function
	out := &jsast.FunctionDeclaration{
		Name:      &jsast.Identifier{Name: string(fn.Name.Name)},
		Params:    c.parameterList(fn.ParameterList),
		Body:      c.blockStatement(fn.Body),
		Async:     fn.Async,
		Generator: fn.Generator,
	}
	out.Loc = c.loc(fn.Idx0(), fn.Idx1())
	return out
}

func (c *converter) functionExpression(fn *gojaast.FunctionLiteral) *jsast.FunctionExpression {
	out := &jsast.FunctionExpression{
		Params:    c.parameterList(fn.ParameterList),
		Body:      c.blockStatement(fn.Body),
		Async:     fn.Async,
		Generator: fn.Generator,
	}
	if fn.Name != nil {
		out.Name = &jsast.Identifier{Name: string(fn.Name.Name)}
	}
	out.Loc = c.loc(fn.Idx0(), fn.Idx1())
	return out
}

func (c *converter) parameterList(list *gojaast.ParameterList) []jsast.Node {
	if list == nil {
		return nil
	}
	params := make([]jsast.Node, 0, len(list.List))
	for _, p := range list.List {
		target := c.bindingTarget(p.Target)
		if p.Initializer != nil {
			target = &jsast.AssignmentPattern{Left: target, Default: c.expression(p.Initializer)}
		}
		params = append(params, target)
	}
	if list.Rest != nil {
		params = append(params, &jsast.RestElement{Argument: c.bindingTarget(list.Rest)})
	}
	return params
}

// gojaKindName returns a human-readable name for an unrecognized goja
// node, for use in the "not yet implemented" diagnostic.
func gojaKindName(n any) string {
	return fmt.Sprintf("%T", n)
}
