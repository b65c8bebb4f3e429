// Package diagnostic reports transform-time failures: unsupported
// syntax, malformed binding patterns, or AST nodes missing a source
// location. These are not catchable by the target-language program
// under instrumentation; callers of the core see them propagate out of
// the transform call.
package diagnostic

import (
	"fmt"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

// TransformError is the typed panic value Fail raises. The driver
// recovers it at the top level and reports it via the console printer.
type TransformError struct {
	Pos       jsast.Position
	Construct string
	Message   string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Construct, e.Message)
}

// Fail aborts the current transform with a TransformError naming the
// unsupported or malformed construct and its source position. It never
// returns.
func Fail(pos jsast.Position, construct, format string, args ...any) {
	panic(&TransformError{
		Pos:       pos,
		Construct: construct,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Recover turns a panicked *TransformError into a returned error,
// leaving any other panic value to continue unwinding. Call it deferred
// at the boundary the driver controls:
//
//	defer diagnostic.Recover(&err)
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	te, ok := r.(*TransformError)
	if !ok {
		panic(r)
	}
	*err = te
}
