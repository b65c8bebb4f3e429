package scope

import (
	"fmt"

	"github.com/dynajs-dev/dynajs/internal/jsast"
)

// CollectIdentifiers returns the bound names of a binding pattern, in
// source order, per SPEC_FULL.md section 4.2. Any node kind that is not
// a supported binding-pattern shape is a programmer error and panics
// with the offending kind named, matching the donor's fail-fast posture
// for malformed internal invariants (the parser adapter is responsible
// for never handing the walker anything else).
func CollectIdentifiers(p jsast.Node) []string {
	var names []string
	collect(p, &names)
	return names
}

func collect(p jsast.Node, names *[]string) {
	switch n := p.(type) {
	case nil:
		return
	case *jsast.Identifier:
		*names = append(*names, n.Name)
	case *jsast.ObjectPattern:
		for _, prop := range n.Properties {
			collect(prop.Value, names)
		}
		if n.Rest != nil {
			collect(n.Rest, names)
		}
	case *jsast.ArrayPattern:
		for _, el := range n.Elements {
			if el == nil {
				continue // a hole contributes nothing
			}
			collect(el, names)
		}
		if n.Rest != nil {
			collect(n.Rest, names)
		}
	case *jsast.RestElement:
		collect(n.Argument, names)
	case *jsast.AssignmentPattern:
		// the default expression is walked later as an ordinary
		// expression, not scanned here.
		collect(n.Left, names)
	default:
		panic(fmt.Sprintf("scope: not a binding pattern: %T", p))
	}
}
