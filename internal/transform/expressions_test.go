package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynajs-dev/dynajs/internal/codegen"
	"github.com/dynajs-dev/dynajs/internal/jsast"
	"github.com/dynajs-dev/dynajs/internal/scope"
)

func newTestState() *State {
	return newState(codegen.New("J$"), "test.js", "test.js")
}

func TestWalkExprIdentifierReadHook(t *testing.T) {
	s := newTestState()
	s.scope = scope.AnalyzeProgram(nil)
	out := s.walkExpr(&jsast.Identifier{Name: "x"})
	assert.Equal(t, `J$.R(0, "x", x)`, out)
}

func TestWalkExprIdentifierInLHSSkipsReadHook(t *testing.T) {
	s := newTestState()
	s.withLHS(true, func() {
		out := s.walkExpr(&jsast.Identifier{Name: "x"})
		assert.Equal(t, "x", out)
	})
}

func TestPatternTextObjectShorthand(t *testing.T) {
	s := newTestState()
	pat := &jsast.ObjectPattern{Properties: []*jsast.ObjectProperty{
		{Key: "a", Value: &jsast.Identifier{Name: "a"}},
	}}
	assert.Equal(t, "{a}", s.patternText(pat))
}

func TestPatternTextObjectRename(t *testing.T) {
	s := newTestState()
	pat := &jsast.ObjectPattern{Properties: []*jsast.ObjectProperty{
		{Key: "a", Value: &jsast.Identifier{Name: "b"}},
	}}
	assert.Equal(t, "{a: b}", s.patternText(pat))
}

func TestPatternTextAssignmentDefaultIsReadNotBinding(t *testing.T) {
	s := newTestState()
	s.scope = scope.AnalyzeProgram(nil)
	pat := &jsast.AssignmentPattern{
		Left:    &jsast.Identifier{Name: "a"},
		Default: &jsast.Identifier{Name: "fallback"},
	}
	out := s.patternText(pat)
	assert.Equal(t, `a = J$.R(0, "fallback", fallback)`, out)
	assert.False(t, s.lhs, "lhs flag must be restored after patternText returns")
}

func TestMemberWriteCapturesBaseOnce(t *testing.T) {
	s := newTestState()
	s.scope = scope.AnalyzeProgram(nil)
	assign := &jsast.AssignmentExpression{
		Left: &jsast.MemberExpression{
			Object:   &jsast.Identifier{Name: "obj"},
			Property: &jsast.Identifier{Name: "prop"},
			Computed: false,
		},
		Right: &jsast.Literal{LitKind: jsast.LiteralNumber, Raw: "1", Value: float64(1)},
	}
	out := s.assignmentExpr(assign)
	assert.Contains(t, out, `J$._t1 = J$.R(3, "obj", obj)`)
	assert.Contains(t, out, "J$._t1.prop")
	assert.Equal(t, 1, s.tempSeq)
}

func TestUpdateExpressionIdentifierWriterClosure(t *testing.T) {
	s := newTestState()
	s.scope = scope.AnalyzeProgram(nil)
	upd := &jsast.UpdateExpression{Operator: "++", Argument: &jsast.Identifier{Name: "x"}, Prefix: false}
	out := s.updateExpr(upd)
	assert.Contains(t, out, "J$.Up(")
	assert.Contains(t, out, "function($v){ return (x = ")
}

func TestCallExprMethodCallCapturesReceiverOnce(t *testing.T) {
	s := newTestState()
	s.scope = scope.AnalyzeProgram(nil)
	call := &jsast.CallExpression{
		Callee: &jsast.MemberExpression{
			Object:   &jsast.Identifier{Name: "arr"},
			Property: &jsast.Identifier{Name: "push"},
			Computed: false,
		},
		Args: []jsast.Node{&jsast.Identifier{Name: "x"}},
	}
	out := s.callExpr(call)
	assert.Contains(t, out, `J$._t1 = J$.R(3, "arr", arr)`)
	assert.Contains(t, out, "J$.M(")
}
