package translate

import (
	"math"

	"almanac/category"
)

// Walk resolves the lowest Location identifier reachable from s at cat.
//
// The probe is carried down the chain one category at a time. At each stage
// it is split at the boundaries of the rules it intersects; every fragment
// is clipped, shifted by its rule's offset, and walked independently
// through the rest of the chain. A probe intersecting no rule passes
// through unchanged as an implicit identity mapping. Rules preserve order
// inside their span, so at Location only a fragment's lower bound can be
// the minimum and nothing else needs tracking.
//
// Every recursive call advances cat toward Location, so Walk always
// terminates; branching is bounded by the number of rules per category.
func (t *Table) Walk(cat category.Category, s Span) uint64 {
	next, ok := cat.Next()
	if !ok {
		return s.Start
	}

	segments := t.overlapping(cat, s)
	if len(segments) == 0 {
		return t.Walk(next, s)
	}

	lowest := uint64(math.MaxUint64)
	for _, e := range segments {
		clipped := s.Clip(e.src.span)

		v := t.Walk(next, clipped.Shift(e.src.span.Start, e.dst.span.Start))
		if v < lowest {
			lowest = v
		}
	}

	return lowest
}
