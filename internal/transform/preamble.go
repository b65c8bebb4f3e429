package transform

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/dynajs-dev/dynajs/internal/jsast"
	"github.com/dynajs-dev/dynajs/internal/registry"
)

// NoInstrumentMarker disables transformation anywhere it occurs in the
// source. The marker is carried forward into every produced file's
// preamble so re-instrumenting an already-instrumented file is a
// no-op.
const NoInstrumentMarker = "NO_INSTRUMENT"

// preamble renders the fixed header every produced file starts with:
// the marker comment, the id-to-location table assignment, and the
// tool-attribution comment.
func preamble(global, toolName string, reg *registry.Registry) string {
	table := serializeTable(reg.Table())
	return fmt.Sprintf("// %s\n%s.ids = %s;\n// INSTRUMENTED BY %s\n", NoInstrumentMarker, global, table, toolName)
}

// serializeTable renders the id-to-location table as a JSON object
// keyed by the decimal id, each value the 4-tuple
// [startLine, startColumn+1, endLine, endColumn+1].
func serializeTable(table map[int]jsast.LocationTuple) string {
	keyed := make(map[string]jsast.LocationTuple, len(table))
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
		keyed[strconv.Itoa(id)] = table[id]
	}
	sort.Ints(ids)

	// encoding/json on a map would reorder keys lexically as strings
	// ("10" before "2"); building the object text by hand keeps ids in
	// the numerically sorted order a human reading the preamble expects.
	buf := []byte("{")
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, _ := json.Marshal(strconv.Itoa(id))
		val, _ := json.Marshal(keyed[strconv.Itoa(id)])
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return string(buf)
}
