package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitterCallShapes(t *testing.T) {
	e := New("J$")

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"ScriptEnter", e.ScriptEnter(0, "a__dynajs__.js", "a.js"), `J$.Se(0, "a__dynajs__.js", "a.js")`},
		{"ScriptExit", e.ScriptExit(0), `J$.Sx(0)`},
		{"FuncEnter", e.FuncEnter(3, "f", "this", "arguments"), `J$.Fe(3, f, this, arguments)`},
		{"Read", e.Read(4, "x"), `J$.R(4, "x", x)`},
		{"Write", e.Write(5, []string{"x"}, "3"), `J$.W(5, ["x"], 3)`},
		{"WriteMulti", e.Write(5, []string{"a", "b"}, "rhs"), `J$.W(5, ["a", "b"], rhs)`},
		{"DeclareNoValue", e.Declare(1, "y", "Let", ""), `J$.D(1, "y", J$.Let)`},
		{"DeclareWithValue", e.Declare(1, "x", "Var", "undefined"), `J$.D(1, "x", J$.Var, undefined)`},
		{"Binary", e.Binary(2, "+", "1", "2"), `J$.B(2, "+", 1, 2)`},
		{"Unary", e.Unary(2, "!", "x"), `J$.U(2, "!", x)`},
		{"Condition", e.Condition(6, "if", "cond"), `J$.C(6, "if", cond)`},
		{"GetField", e.GetField(7, "obj", `"prop"`), `J$.G(7, obj, "prop")`},
		{"ForObject", e.ForObject(8, "arr", true), `J$.O(8, arr, true)`},
		{"BuildCallWrapper", e.BuildCallWrapper(9, "f", false), `J$.F(9, f, false)`},
		{"BuildMethodWrapper", e.BuildMethodWrapper(9, "obj", `"m"`, false), `J$.M(9, obj, "m", false)`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.got)
		})
	}
}

func TestUpdateIncludesBinaryIDAndWriter(t *testing.T) {
	e := New("J$")
	got := e.Update(10, 11, "++", true, "x", "function(v){ return x = v; }")
	assert.Equal(t, `J$.Up(10, 11, "++", true, x, function(v){ return x = v; })`, got)
}

func TestDifferentRuntimeGlobal(t *testing.T) {
	e := New("__inst")
	assert.Equal(t, `__inst.R(0, "x", x)`, e.Read(0, "x"))
}
