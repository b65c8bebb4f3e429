package scope

// Frame is one region's scope, per SPEC_FULL.md section 3: an ordered
// mapping from name to kind, a parent link, and a flag recording
// whether hoisted names declared anywhere beneath this frame (without
// crossing a function/class boundary) land here.
type Frame struct {
	parent        *Frame
	isFuncRegion  bool
	bindings      map[string]Kind
	order         []string
}

func newFrame(parent *Frame, isFuncRegion bool) *Frame {
	return &Frame{
		parent:       parent,
		isFuncRegion: isFuncRegion,
		bindings:     make(map[string]Kind),
	}
}

// IsFunctionRegion reports whether this frame was created for a
// function or the program, as opposed to a lexical-only block/catch/
// for-header/switch-body frame.
func (f *Frame) IsFunctionRegion() bool { return f.isFuncRegion }

// nearestFunctionFrame walks up the chain to find where hoisted names
// belong. The program frame is itself a function region, so this
// always terminates.
func (f *Frame) nearestFunctionFrame() *Frame {
	for fr := f; fr != nil; fr = fr.parent {
		if fr.isFuncRegion {
			return fr
		}
	}
	return f
}

// declareDirect seeds a binding onto this exact frame, used for names
// that belong here by construction (arguments, parameters, a named
// function expression's own name, catch params, for-header iteration
// variables) rather than by hoisting.
func (f *Frame) declareDirect(name string, kind Kind) {
	if name == "" {
		return
	}
	if _, ok := f.bindings[name]; !ok {
		f.order = append(f.order, name)
	}
	f.bindings[name] = kind
}

// declareHoisted attaches a var/function binding to the nearest
// enclosing function/program frame, regardless of which block-scoped
// frame is calling. A function declaration with the same name as an
// existing var wins, matching ordinary hoisting precedence; repeat
// declarations of the same kind are no-ops.
func (f *Frame) declareHoisted(name string, kind Kind) {
	target := f.nearestFunctionFrame()
	existing, ok := target.bindings[name]
	if !ok {
		target.order = append(target.order, name)
		target.bindings[name] = kind
		return
	}
	if existing != Func && kind == Func {
		target.bindings[name] = kind
	}
}

// declareLexical adds a let/const binding to this exact frame.
func (f *Frame) declareLexical(name string, kind Kind) {
	f.declareDirect(name, kind)
}

// Lookup searches this frame and its ancestors for name, returning the
// kind it was declared with and the frame that owns it.
func (f *Frame) Lookup(name string) (Kind, *Frame, bool) {
	for fr := f; fr != nil; fr = fr.parent {
		if k, ok := fr.bindings[name]; ok {
			return k, fr, true
		}
	}
	return 0, nil, false
}

// Declared returns this frame's own bindings in declaration order, for
// emitting declare hooks at scope entry.
func (f *Frame) Declared() []Binding {
	out := make([]Binding, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, Binding{Name: name, Kind: f.bindings[name]})
	}
	return out
}
