package jsast

// FunctionDeclaration always has a Name; the implicit-function-name
// case (a named FunctionExpression) lives in FunctionExpression.Name.
type FunctionDeclaration struct {
	base
	Name      *Identifier
	Params    []Node // binding patterns
	Body      *BlockStatement
	Async     bool
	Generator bool
}

func (*FunctionDeclaration) Kind() NodeKind { return KindFunctionDeclaration }

type FunctionExpression struct {
	base
	Name      *Identifier // nil for an anonymous function expression
	Params    []Node
	Body      *BlockStatement
	Async     bool
	Generator bool
}

func (*FunctionExpression) Kind() NodeKind { return KindFunctionExpression }
