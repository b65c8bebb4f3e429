// Package transform implements the visitor dispatcher and driver: the
// per-node-kind handlers that walk a jsast.Node tree and write its
// instrumented equivalent into an indented buffer, and the top-level
// Transform entry point that ties parsing, scope analysis, and hook
// emission together into one file-to-file pipeline.
package transform

import (
	"fmt"

	"github.com/dynajs-dev/dynajs/internal/codegen"
	"github.com/dynajs-dev/dynajs/internal/jsast"
	"github.com/dynajs-dev/dynajs/internal/registry"
	"github.com/dynajs-dev/dynajs/internal/scope"
	"github.com/dynajs-dev/dynajs/internal/writer"
)

// State is the per-file transformer state spec.md section 3 names: the
// output buffer, the id registry, the current scope frame, the LHS
// flag threaded through every expression visit, and the original/
// instrumented file paths reported at script enter.
type State struct {
	reg   *registry.Registry
	emit  codegen.Emitter
	out   *writer.Buffer
	scope *scope.Frame
	lhs   bool

	instPath string
	origPath string

	tempSeq int
}

func newState(emit codegen.Emitter, instPath, origPath string) *State {
	return &State{
		reg:      registry.New(),
		emit:     emit,
		out:      writer.New("  "),
		instPath: instPath,
		origPath: origPath,
	}
}

// withLHS runs fn with the LHS flag set to v for its duration,
// restoring the previous value on return. patternText holds it over a
// whole binding pattern; every other caller wraps a single subtree visit.
func (s *State) withLHS(v bool, fn func()) {
	prev := s.lhs
	s.lhs = v
	fn()
	s.lhs = prev
}

func (s *State) newID(n jsast.Node) int { return s.reg.NewID(n) }

// nextTemp returns a fresh runtime-global-qualified temporary name,
// used to hold a base object or iteration value evaluated once and
// referenced more than once in the generated text.
func (s *State) nextTemp() string {
	s.tempSeq++
	return fmt.Sprintf("%s._t%d", s.emit.Global, s.tempSeq)
}

// captureBlock runs fn against a fresh, independent output buffer and
// returns what it wrote, restoring s.out afterward. Composing two
// indent-aware buffers this way is correct by construction: the
// captured text's own lines already carry their relative indent, and
// splicing it back through the outer buffer's WriteString adds the
// outer buffer's current depth uniformly on top.
func (s *State) captureBlock(fn func()) string {
	outer := s.out
	s.out = writer.New("  ")
	fn()
	text := s.out.String()
	s.out = outer
	return text
}

func posOf(n jsast.Node) jsast.Position {
	if n == nil {
		return jsast.Position{}
	}
	if loc := n.Location(); loc != nil {
		return loc.Start
	}
	return jsast.Position{}
}

func keywordFor(k jsast.DeclarationKind) string {
	switch k {
	case jsast.DeclLet:
		return "let"
	case jsast.DeclConst:
		return "const"
	default:
		return "var"
	}
}

func kindFor(k jsast.DeclarationKind) scope.Kind {
	if k == jsast.DeclConst {
		return scope.Const
	}
	return scope.Let
}

func declaredNames(decl *jsast.VariableDeclaration) []string {
	var names []string
	for _, d := range decl.Declarators {
		names = append(names, scope.CollectIdentifiers(d.ID)...)
	}
	return names
}

// emitDeclares writes a D(...) hook call statement for every binding
// the current scope frame owns, in declaration order. Lexical bindings
// (Let/Const) omit the value argument: they are still in the temporal
// dead zone at scope entry.
func (s *State) emitDeclares() {
	for _, b := range s.scope.Declared() {
		siteID := s.newID(nil)
		value := b.Name
		if b.Kind.IsLexical() {
			value = ""
		}
		s.out.WriteLine(s.emit.Declare(siteID, b.Name, b.Kind.String(), value) + ";")
	}
}
