package scope

import "github.com/dynajs-dev/dynajs/internal/jsast"

// AnalyzeProgram creates the program-level frame and runs both passes
// over the top-level body.
func AnalyzeProgram(body []jsast.Node) *Frame {
	f := newFrame(nil, true)
	hoistedPass(f, body)
	lexicalPass(f, body)
	return f
}

// AnalyzeFunction creates a function-region frame seeded with
// `arguments`, the function's own name (for a named function
// expression; pass "" otherwise), and each parameter pattern's bound
// names, then runs both passes over the body.
func AnalyzeFunction(parent *Frame, name string, params []jsast.Node, body []jsast.Node) *Frame {
	f := newFrame(parent, true)
	if name != "" {
		f.declareDirect(name, Func)
	}
	for _, p := range params {
		for _, n := range CollectIdentifiers(p) {
			f.declareDirect(n, Param)
		}
	}
	f.declareDirect("arguments", Arguments)
	hoistedPass(f, body)
	lexicalPass(f, body)
	return f
}

// AnalyzeBlock creates a lexical-only frame over a block's immediate
// children. Hoisted names discovered here still attach to the nearest
// enclosing function/program frame, not to this one.
func AnalyzeBlock(parent *Frame, body []jsast.Node) *Frame {
	f := newFrame(parent, false)
	hoistedPass(f, body)
	lexicalPass(f, body)
	return f
}

// AnalyzeCatch creates a frame for a catch clause, seeded with the
// catch parameter's bound names (CatchParam kind), then runs both
// passes over the catch body as an ordinary block.
func AnalyzeCatch(parent *Frame, param jsast.Node, body []jsast.Node) *Frame {
	f := newFrame(parent, false)
	if param != nil {
		for _, n := range CollectIdentifiers(param) {
			f.declareDirect(n, CatchParam)
		}
	}
	hoistedPass(f, body)
	lexicalPass(f, body)
	return f
}

// AnalyzeSwitchBody creates one frame over all of a switch statement's
// case bodies combined, matching spec.md's "switch body" region: a
// `let`/`const` declared in one case is visible (and TDZ-guarded) in
// every other case of the same switch.
func AnalyzeSwitchBody(parent *Frame, cases []*jsast.SwitchCase) *Frame {
	f := newFrame(parent, false)
	var body []jsast.Node
	for _, c := range cases {
		body = append(body, c.Consequent...)
	}
	hoistedPass(f, body)
	lexicalPass(f, body)
	return f
}

// NewForHeaderFrame creates the fresh lexical frame a `for` header with
// a let/const initializer opens, seeded directly with the iteration
// binding names (no hoisted/lexical pass: a for-header only ever
// introduces the names in its own declarator list).
func NewForHeaderFrame(parent *Frame, names []string, kind Kind) *Frame {
	f := newFrame(parent, false)
	for _, n := range names {
		f.declareDirect(n, kind)
	}
	return f
}

// hoistedPass collects var declarations and function declarations from
// body's immediate statements, attaching each to the nearest enclosing
// function/program frame. It does not descend into nested statements:
// when the walk later enters a nested block, switch body, or catch
// clause, that region's own hoisted pass (run from its own AnalyzeXxx
// call) attaches any vars declared directly inside it to the same
// nearest function frame. By then that frame's declare hooks have
// already been emitted, and the nested region emits hooks only for its
// own frame, so such a var gets no D(...) hook. A var under a bare
// (non-block) statement body or in a for/for-in/for-of head is not
// collected at all.
func hoistedPass(f *Frame, body []jsast.Node) {
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *jsast.VariableDeclaration:
			if s.DeclKind == jsast.DeclVar {
				for _, d := range s.Declarators {
					for _, name := range CollectIdentifiers(d.ID) {
						f.declareHoisted(name, Var)
					}
				}
			}
		case *jsast.FunctionDeclaration:
			f.declareHoisted(s.Name.Name, Func)
		}
	}
}

// lexicalPass collects let/const declarations from body's immediate
// statements into this exact frame.
func lexicalPass(f *Frame, body []jsast.Node) {
	for _, stmt := range body {
		decl, ok := stmt.(*jsast.VariableDeclaration)
		if !ok || decl.DeclKind == jsast.DeclVar {
			continue
		}
		kind := Let
		if decl.DeclKind == jsast.DeclConst {
			kind = Const
		}
		for _, d := range decl.Declarators {
			for _, name := range CollectIdentifiers(d.ID) {
				f.declareLexical(name, kind)
			}
		}
	}
}
