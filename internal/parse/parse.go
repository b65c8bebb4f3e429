// Package parse implements the Parser contract of SPEC_FULL.md section 6
// by wrapping github.com/dop251/goja/parser and github.com/dop251/goja/ast,
// the real ECMAScript-grammar parser goja ships for its own VM. This
// package's only job is translating goja's AST into internal/jsast's
// closed, tagged-variant tree; no rewriting happens here.
package parse

import (
	"fmt"

	gojaast "github.com/dop251/goja/ast"
	gojafile "github.com/dop251/goja/file"
	gojaparser "github.com/dop251/goja/parser"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

// Source parses filename's contents and returns the Program root of the
// translated AST. Parse errors (syntax errors in the target language)
// are returned as-is; they are not the transform-time failures spec.md
// section 7 describes, since nothing has been walked yet.
func Source(filename, src string) (*jsast.Program, error) {
	prog, err := gojaparser.ParseFile(nil, filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	c := &converter{fileSet: prog.File}
	return c.program(prog), nil
}

// converter carries the file set needed to resolve goja's file.Idx
// positions into line/column pairs while walking the tree once.
type converter struct {
	fileSet *gojafile.File
}

func (c *converter) loc(from, to gojafile.Idx) *jsast.SourceLoc {
	if c.fileSet == nil {
		return nil
	}
	start := c.fileSet.Position(int(from))
	end := c.fileSet.Position(int(to))
	return &jsast.SourceLoc{
		Start: jsast.Position{Line: start.Line, Column: start.Column - 1},
		End:   jsast.Position{Line: end.Line, Column: end.Column - 1},
	}
}

func (c *converter) program(p *gojaast.Program) *jsast.Program {
	body := make([]jsast.Node, 0, len(p.Body))
	for _, stmt := range p.Body {
		body = append(body, c.statement(stmt))
	}
	return &jsast.Program{Body: body}
}
