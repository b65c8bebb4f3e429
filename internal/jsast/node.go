// Package jsast defines the tagged-variant AST the transformer walks.
// Every node kind is a concrete struct; Kind() is the discriminator a
// dispatcher switches on. The set of kinds is closed on purpose: adding a
// new one means adding a case to every visitor, which is the point.
package jsast

// NodeKind discriminates the concrete type behind a Node.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindBlockStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindExpressionStatement
	KindEmptyStatement
	KindIdentifier
	KindLiteral
	KindBinaryExpression
	KindLogicalExpression
	KindUnaryExpression
	KindUpdateExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindSequenceExpression
	KindIfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindBreakStatement
	KindContinueStatement
	KindLabeledStatement
	KindSwitchStatement
	KindSwitchCase
	KindMemberExpression
	KindCallExpression
	KindNewExpression
	KindFunctionDeclaration
	KindFunctionExpression
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindObjectPattern
	KindObjectProperty
	KindArrayPattern
	KindRestElement
	KindAssignmentPattern
	KindUnsupported
)

// Node is implemented by every concrete AST node type in this package.
type Node interface {
	Kind() NodeKind
	Location() *SourceLoc
}

// base is embedded by every node to provide the common Loc field and its
// accessor without repeating the method on every type.
type base struct {
	Loc *SourceLoc
}

func (b base) Location() *SourceLoc { return b.Loc }

// Unsupported wraps a construct this revision deliberately does not
// instrument (class bodies, templates, spread, yield, await, optional
// chaining, import/export, private identifiers, with-statements, static
// blocks, and destructuring shapes beyond the patterns in patterns.go).
// The dispatcher turns this into a fatal transform error naming
// ConstructName and the node's location; it is never silently passed
// through.
type Unsupported struct {
	base
	ConstructName string
}

func (*Unsupported) Kind() NodeKind { return KindUnsupported }
