// Package registry assigns monotonically increasing ids to instrumented
// sites and remembers the source location each id was allocated for,
// mirroring the donor's parser/facts.Keeper: a small, single-purpose
// map wrapped in methods rather than exposed as a bare map.
package registry

import "github.com/dynajs-dev/dynajs/internal/jsast"

// Registry is global to the transformation of exactly one file. It is
// not safe for concurrent use; the transformer never shares one across
// goroutines.
type Registry struct {
	next      int
	locations map[int]jsast.LocationTuple
}

// New returns an empty Registry ready to allocate ids starting at zero.
func New() *Registry {
	return &Registry{
		locations: make(map[int]jsast.LocationTuple),
	}
}

// NewID returns the next integer id and records its location if node
// carries one. Ids are strictly increasing in call order.
func (r *Registry) NewID(node jsast.Node) int {
	id := r.next
	r.next++

	if node != nil {
		if loc := node.Location(); loc != nil {
			r.locations[id] = loc.Tuple()
		}
	}

	return id
}

// Len returns the number of ids allocated so far.
func (r *Registry) Len() int {
	return r.next
}

// Table returns the full id-to-location mapping, keyed by id, for
// serialization into the preamble. Ids with no recorded location
// (synthesized sites) are omitted, matching the location-completeness
// invariant.
func (r *Registry) Table() map[int]jsast.LocationTuple {
	out := make(map[int]jsast.LocationTuple, len(r.locations))
	for id, loc := range r.locations {
		out[id] = loc
	}
	return out
}
