package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

func varDecl(name string) *jsast.VariableDeclaration {
	return &jsast.VariableDeclaration{
		DeclKind:    jsast.DeclVar,
		Declarators: []*jsast.VariableDeclarator{{ID: &jsast.Identifier{Name: name}}},
	}
}

func letDecl(name string) *jsast.VariableDeclaration {
	return &jsast.VariableDeclaration{
		DeclKind:    jsast.DeclLet,
		Declarators: []*jsast.VariableDeclarator{{ID: &jsast.Identifier{Name: name}}},
	}
}

func TestAnalyzeProgram(t *testing.T) {
	body := []jsast.Node{
		varDecl("x"),
		&jsast.FunctionDeclaration{Name: &jsast.Identifier{Name: "f"}},
	}
	f := AnalyzeProgram(body)

	k, _, ok := f.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, Var, k)

	k, _, ok = f.Lookup("f")
	assert.True(t, ok)
	assert.Equal(t, Func, k)

	assert.True(t, f.IsFunctionRegion())
}

func TestAnalyzeBlockHoistsVarToFunctionFrame(t *testing.T) {
	fn := AnalyzeFunction(nil, "", nil, nil)
	block := AnalyzeBlock(fn, []jsast.Node{varDecl("hoisted"), letDecl("blockOnly")})

	// var declared inside the block attaches to the function frame, not the block.
	_, owner, ok := block.Lookup("hoisted")
	assert.True(t, ok)
	assert.Same(t, fn, owner)

	// let declared inside the block stays local to the block frame.
	_, owner, ok = block.Lookup("blockOnly")
	assert.True(t, ok)
	assert.Same(t, block, owner)

	_, _, ok = fn.Lookup("blockOnly")
	assert.False(t, ok, "let bindings must not leak into the enclosing function frame")
}

func TestAnalyzeFunctionSeedsArgumentsAndParams(t *testing.T) {
	params := []jsast.Node{&jsast.Identifier{Name: "a"}, &jsast.Identifier{Name: "b"}}
	f := AnalyzeFunction(nil, "named", params, nil)

	k, _, ok := f.Lookup("arguments")
	assert.True(t, ok)
	assert.Equal(t, Arguments, k)

	k, _, ok = f.Lookup("named")
	assert.True(t, ok)
	assert.Equal(t, Func, k)

	k, _, ok = f.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, Param, k)
}

func TestDeclaredPreservesOrder(t *testing.T) {
	body := []jsast.Node{letDecl("b"), letDecl("a"), varDecl("c")}
	f := AnalyzeProgram(body)

	var names []string
	for _, b := range f.Declared() {
		names = append(names, b.Name)
	}
	// the hoisted pass runs before the lexical pass, so "c" is found first.
	assert.Equal(t, []string{"c", "b", "a"}, names)
}

func TestFunctionDeclarationWinsOverVarOfSameName(t *testing.T) {
	body := []jsast.Node{
		varDecl("x"),
		&jsast.FunctionDeclaration{Name: &jsast.Identifier{Name: "x"}},
	}
	f := AnalyzeProgram(body)
	k, _, ok := f.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, Func, k)
}

func TestCatchParamKind(t *testing.T) {
	f := AnalyzeCatch(nil, &jsast.Identifier{Name: "err"}, nil)
	k, _, ok := f.Lookup("err")
	assert.True(t, ok)
	assert.Equal(t, CatchParam, k)
}
