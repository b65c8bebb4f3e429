package transform

import (
	"fmt"
	"strings"

	"github.com/dynajs-dev/dynajs/internal/diagnostic"
	"github.com/dynajs-dev/dynajs/internal/jsast"
)

// patternText renders a binding pattern in LHS context: plain names
// are emitted as-is, never wrapped in a read hook. It sets the LHS
// flag for the whole subtree and restores it on return, per the
// discipline spec.md section 4.5 describes; a default expression
// inside an AssignmentPattern is the one place within a pattern that
// is genuinely a read, so it is walked with the flag cleared.
func (s *State) patternText(n jsast.Node) string {
	var out string
	s.withLHS(true, func() {
		out = s.patternTextInner(n)
	})
	return out
}

func (s *State) patternTextInner(n jsast.Node) string {
	switch p := n.(type) {
	case nil:
		return ""
	case *jsast.Identifier:
		return s.walkExpr(p)
	case *jsast.ObjectPattern:
		parts := make([]string, 0, len(p.Properties)+1)
		for _, prop := range p.Properties {
			valText := s.patternTextInner(prop.Value)
			if id, ok := prop.Value.(*jsast.Identifier); ok && id.Name == prop.Key {
				parts = append(parts, prop.Key)
				continue
			}
			parts = append(parts, prop.Key+": "+valText)
		}
		if p.Rest != nil {
			parts = append(parts, "..."+s.patternTextInner(p.Rest))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *jsast.ArrayPattern:
		parts := make([]string, len(p.Elements))
		for i, el := range p.Elements {
			if el == nil {
				continue
			}
			parts[i] = s.patternTextInner(el)
		}
		if p.Rest != nil {
			parts = append(parts, "..."+s.patternTextInner(p.Rest))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *jsast.RestElement:
		return s.patternTextInner(p.Argument)
	case *jsast.AssignmentPattern:
		left := s.patternTextInner(p.Left)
		var def string
		s.withLHS(false, func() { def = s.walkExpr(p.Default) })
		return left + " = " + def
	default:
		diagnostic.Fail(posOf(n), fmt.Sprintf("%T", n), "unsupported binding pattern shape")
		return ""
	}
}
