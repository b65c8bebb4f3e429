package transform

import (
	"fmt"
	"strings"

	"github.com/dynajs-dev/dynajs/internal/codegen"
	"github.com/dynajs-dev/dynajs/internal/diagnostic"
	"github.com/dynajs-dev/dynajs/internal/parse"
	"github.com/dynajs-dev/dynajs/internal/registry"
)

// Options configures one Transform call. RuntimeGlobal and ToolName
// default to "J$" and "dynajs" respectively when left empty, matching
// cmd/transform.go's flag defaults.
type Options struct {
	RuntimeGlobal string
	ToolName      string
	InstPath      string
	OrigPath      string
}

func (o Options) withDefaults() Options {
	if o.RuntimeGlobal == "" {
		o.RuntimeGlobal = "J$"
	}
	if o.ToolName == "" {
		o.ToolName = "dynajs"
	}
	return o
}

// Transform parses source, walks it into an instrumented equivalent,
// and returns the full file text: preamble followed by the
// instrumented (or, if the no-instrument marker is present, verbatim)
// body. A transform-time failure (unsupported syntax, a malformed
// binding pattern, a missing parser location) is returned as an error
// rather than panicking out of this call; diagnostic.Fail sites inside
// the walk are recovered here.
func Transform(filename, source string, opts Options) (out string, err error) {
	opts = opts.withDefaults()
	emit := codegen.New(opts.RuntimeGlobal)

	if strings.Contains(source, NoInstrumentMarker) {
		diagnostic.Note("%s: NO_INSTRUMENT marker present, passing through unmodified", filename)
		return preamble(opts.RuntimeGlobal, opts.ToolName, registry.New()) + source, nil
	}

	// Deferred calls run last-in first-out: Recover (deferred directly, so
	// its recover() takes effect) fills err before the report runs.
	defer func() {
		if te, ok := err.(*diagnostic.TransformError); ok {
			diagnostic.ReportFailure(te)
		}
	}()
	defer diagnostic.Recover(&err)

	prog, perr := parse.Source(filename, source)
	if perr != nil {
		return "", fmt.Errorf("dynajs: parse %s: %w", filename, perr)
	}

	st := newState(emit, opts.InstPath, opts.OrigPath)
	st.program(prog)
	diagnostic.Note("%s: allocated %d instrumentation ids", filename, st.reg.Len())

	return preamble(opts.RuntimeGlobal, opts.ToolName, st.reg) + st.out.String(), nil
}
