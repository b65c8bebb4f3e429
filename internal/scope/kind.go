// Package scope implements the pattern walker and two-pass scope
// analyzer of SPEC_FULL.md section 4.2-4.3: collecting the names a
// binding pattern introduces, and building the frame chain that tells
// the transform dispatcher which names are hoisted, which are lexical,
// and which sit in the temporal dead zone at scope entry.
package scope

// Kind is the small enumeration of binding kinds spec.md's data model
// names. TDZ applies precisely to Let and Const.
type Kind int

const (
	Var Kind = iota
	Let
	Const
	Func
	Param
	CatchParam
	Arguments
)

func (k Kind) String() string {
	switch k {
	case Var:
		return "Var"
	case Let:
		return "Let"
	case Const:
		return "Const"
	case Func:
		return "Func"
	case Param:
		return "Param"
	case CatchParam:
		return "CatchParam"
	case Arguments:
		return "Arguments"
	default:
		return "Unknown"
	}
}

// IsLexical reports whether a kind has TDZ semantics: no pre-declared
// binding, the declare hook fires without a value at scope entry.
func (k Kind) IsLexical() bool {
	return k == Let || k == Const
}

// Binding is one name introduced into a frame, in the order the
// analyzer discovered it.
type Binding struct {
	Name string
	Kind Kind
}
