package translate

// Span is a half-open [Start, End) range of identifiers.
type Span struct {
	Start, End uint64
}

// NewSpan returns the span covering length identifiers from start.
func NewSpan(start, length uint64) Span {
	return Span{Start: start, End: start + length}
}

// Point returns the unit span probing the single identifier v.
func Point(v uint64) Span {
	return NewSpan(v, 1)
}

func (s Span) Len() uint64 {
	return s.End - s.Start
}

func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Overlaps reports whether the two spans share at least one identifier.
// Spans that merely touch do not overlap under half-open semantics.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Adjacent reports whether o begins exactly where s ends.
func (s Span) Adjacent(o Span) bool {
	return s.End == o.Start
}

// Clip returns the intersection of the two spans, or the zero Span when
// they do not overlap.
func (s Span) Clip(o Span) Span {
	if !s.Overlaps(o) {
		return Span{}
	}

	return Span{Start: max(s.Start, o.Start), End: min(s.End, o.End)}
}

// Shift translates the span by the offset carrying from onto to. The
// arithmetic stays in uint64 so offsets wider than a signed 64-bit value
// survive.
func (s Span) Shift(from, to uint64) Span {
	if from <= to {
		d := to - from
		return Span{Start: s.Start + d, End: s.End + d}
	}

	d := from - to
	return Span{Start: s.Start - d, End: s.End - d}
}
