package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

// Emitter builds hook-call fragments qualified against a single
// runtime-global identifier (the `--runtime-global` flag's value,
// `J$` by default).
type Emitter struct {
	Global string
}

// New returns an Emitter that qualifies every hook call against global.
func New(global string) Emitter {
	return Emitter{Global: global}
}

// call joins args with the runtime-global-qualified short name,
// producing "<global>.<short>(<args>)".
func (e Emitter) call(short string, args ...string) string {
	return fmt.Sprintf("%s.%s(%s)", e.Global, short, strings.Join(args, ", "))
}

func id(id int) string { return strconv.Itoa(id) }

// Quote renders s as a target-language double-quoted string literal.
// Go's escaping rules are a safe superset for the identifier and
// property names this package ever quotes.
func Quote(s string) string { return strconv.Quote(s) }

// ScriptEnter emits Se(id, instPath, origPath).
func (e Emitter) ScriptEnter(siteID int, instPath, origPath string) string {
	return e.call(ScriptEnter, id(siteID), Quote(instPath), Quote(origPath))
}

// ScriptExit emits Sx(id).
func (e Emitter) ScriptExit(siteID int) string {
	return e.call(ScriptExit, id(siteID))
}

// FuncEnter emits Fe(id, callee, this, arguments).
func (e Emitter) FuncEnter(siteID int, callee, this, args string) string {
	return e.call(FuncEnter, id(siteID), callee, this, args)
}

// FuncExit emits Fx(id).
func (e Emitter) FuncExit(siteID int) string {
	return e.call(FuncExit, id(siteID))
}

// BuildCallWrapper emits F(id, f, isCtor), used to wrap an ordinary
// call's callee before invocation.
func (e Emitter) BuildCallWrapper(siteID int, f string, isCtor bool) string {
	return e.call(BuildCall, id(siteID), f, strconv.FormatBool(isCtor))
}

// BuildMethodWrapper emits M(id, base, prop, isCtor), used to wrap a
// method call, capturing the receiver before invocation.
func (e Emitter) BuildMethodWrapper(siteID int, base, prop string, isCtor bool) string {
	return e.call(BuildMethod, id(siteID), base, prop, strconv.FormatBool(isCtor))
}

// Return emits Re(id, value).
func (e Emitter) Return(siteID int, value string) string {
	return e.call(Return, id(siteID), value)
}

// Throw emits Th(id, value).
func (e Emitter) Throw(siteID int, value string) string {
	return e.call(Throw, id(siteID), value)
}

// Uncaught emits X(id, value).
func (e Emitter) Uncaught(siteID int, value string) string {
	return e.call(Uncaught, id(siteID), value)
}

// ExprResult emits E(id, value), the expression-statement result hook.
func (e Emitter) ExprResult(siteID int, value string) string {
	return e.call(ExprResult, id(siteID), value)
}

// Literal emits L(id, rawValue, typeCode).
func (e Emitter) Literal(siteID int, rawValue string, typeCode LiteralTypeCode) string {
	return e.call(LiteralOp, id(siteID), rawValue, strconv.Itoa(int(typeCode)))
}

// LiteralValue emits L(id, value) with no type code, used where the
// value being reported is not one of the parsed literal kinds — e.g. a
// function expression reporting its own existence.
func (e Emitter) LiteralValue(siteID int, value string) string {
	return e.call(LiteralOp, id(siteID), value)
}

// Read emits R(id, "name", name), the variable-read hook wrapping an
// RHS-context identifier.
func (e Emitter) Read(siteID int, name string) string {
	return e.call(ReadOp, id(siteID), Quote(name), name)
}

// Write emits W(id, ["name"...], value), the variable-write hook
// wrapping the value of an assignment or initialized declaration.
func (e Emitter) Write(siteID int, names []string, value string) string {
	return e.call(WriteOp, id(siteID), quotedArray(names), value)
}

// Declare emits D(id, "name", kind[, value]). kind is a bare binding-
// kind name (Var, Let, Const, Func, Param, CatchParam, Arguments),
// qualified against the runtime global like any other runtime-exposed
// constant. value is omitted for let/const bindings, which stay in the
// temporal dead zone at scope entry.
func (e Emitter) Declare(siteID int, name, kind string, value string) string {
	kindRef := e.Global + "." + kind
	if value == "" {
		return e.call(DeclareOp, id(siteID), Quote(name), kindRef)
	}
	return e.call(DeclareOp, id(siteID), Quote(name), kindRef, value)
}

// Binary emits B(id, "op", left, right).
func (e Emitter) Binary(siteID int, op, left, right string) string {
	return e.call(BinaryOp, id(siteID), Quote(op), left, right)
}

// Unary emits U(id, "op", operand).
func (e Emitter) Unary(siteID int, op, operand string) string {
	return e.call(UnaryOp, id(siteID), Quote(op), operand)
}

// Update emits Up(id, binaryId, "op", prefix, argument, writer). writer
// is the literal text of the closure the runtime invokes to perform the
// original target update and emit the matching W/P hook.
func (e Emitter) Update(siteID, binaryID int, op string, prefix bool, argument, writer string) string {
	return e.call(UpdateOp, id(siteID), id(binaryID), Quote(op), strconv.FormatBool(prefix), argument, writer)
}

// Condition emits C(id, "op", value), wrapping the operand whose
// truthiness governs branching (an if/while/do-while/for test, a
// logical operator's left operand, or a ternary's test).
func (e Emitter) Condition(siteID int, op, value string) string {
	return e.call(ConditionOp, id(siteID), Quote(op), value)
}

// SwitchLeft emits Swl(id, value), storing a switch discriminant.
func (e Emitter) SwitchLeft(siteID int, value string) string {
	return e.call(SwitchLeftOp, id(siteID), value)
}

// SwitchRight emits Swr(id, caseValue), comparing a case test against
// the stored discriminant.
func (e Emitter) SwitchRight(siteID int, caseValue string) string {
	return e.call(SwitchRightOp, id(siteID), caseValue)
}

// GetField emits G(id, base, prop).
func (e Emitter) GetField(siteID int, base, prop string) string {
	return e.call(GetFieldOp, id(siteID), base, prop)
}

// PutField emits P(id, base, prop, value).
func (e Emitter) PutField(siteID int, base, prop, value string) string {
	return e.call(PutFieldOp, id(siteID), base, prop, value)
}

// Delete emits De(id, base, prop).
func (e Emitter) Delete(siteID int, base, prop string) string {
	return e.call(DeleteOp, id(siteID), base, prop)
}

// ForObject emits O(id, value, isForIn), wrapping a for-in/for-of
// right-hand side.
func (e Emitter) ForObject(siteID int, value string, isForIn bool) string {
	return e.call(ForObjectOp, id(siteID), value, strconv.FormatBool(isForIn))
}

// quotedArray renders names as a target-language array literal of
// double-quoted strings, e.g. ["a", "b"].
func quotedArray(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = Quote(n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
