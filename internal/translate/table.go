package translate

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/btree"

	"almanac/category"
)

var (
	ErrZeroLengthMapping = errors.New("mapping must cover at least one identifier")
	ErrNotChainAdjacent  = errors.New("destination category is not the chain successor of the source")
)

const btreeDegree = 32

// ref identifies a sub-range of one category's identifier domain.
type ref struct {
	cat  category.Category
	span Span
}

// entry is one piecewise rule: a source sub-range and the equally long
// destination sub-range it maps onto in the chain successor.
type entry struct {
	src, dst ref
}

// entryLess orders rules by source category first and source span second.
// Overlapping spans of the same category compare equal, so an ascend from a
// probe entry starts at the first stored rule intersecting the probe.
func entryLess(a, b entry) bool {
	if a.src.cat != b.src.cat {
		return a.src.cat < b.src.cat
	}

	return a.src.span.End <= b.src.span.Start
}

// Table is the almanac translation table: an ordered collection of
// piecewise offset rules between adjacent categories. It is built once and
// read-only afterwards, which is what makes unsynchronized concurrent
// walks safe.
type Table struct {
	tree *btree.BTreeG[entry]
}

func NewTable() *Table {
	return &Table{tree: btree.NewG(btreeDegree, entryLess)}
}

// Len returns the number of rules held, gap-fill entries included.
func (t *Table) Len() int {
	return t.tree.Len()
}

// AddMapping registers the rule translating length identifiers from
// srcStart in srcCat to the identifiers from dstStart in dstCat. dstCat
// must be the chain successor of srcCat and length must be positive.
//
// A rule overlapping previously added rules replaces every one of them:
// last write wins. Leaving that to the tree's own replace would swap out a
// single arbitrary overlapping rule and corrupt the ordering, so the
// overwrite is performed explicitly.
func (t *Table) AddMapping(srcCat category.Category, srcStart, length uint64, dstCat category.Category, dstStart uint64) error {
	if length == 0 {
		return fmt.Errorf("%w: %s %d -> %s %d", ErrZeroLengthMapping, srcCat, srcStart, dstCat, dstStart)
	}

	if next, ok := srcCat.Next(); !ok || next != dstCat {
		return fmt.Errorf("%w: %s -> %s", ErrNotChainAdjacent, srcCat, dstCat)
	}

	e := entry{
		src: ref{cat: srcCat, span: NewSpan(srcStart, length)},
		dst: ref{cat: dstCat, span: NewSpan(dstStart, length)},
	}

	for _, old := range t.overlapping(srcCat, e.src.span) {
		t.tree.Delete(old)
	}
	t.tree.ReplaceOrInsert(e)

	return nil
}

// FillGaps synthesizes identity rules for every sub-range of srcCat below
// the last explicitly covered boundary that no rule covers. A gap-filled
// category answers any probe under that boundary with full coverage, so
// the resolver needs no partial-match handling there. Running it again
// finds no gaps; the operation is idempotent.
func (t *Table) FillGaps(srcCat category.Category) {
	dstCat, ok := srcCat.Next()
	if !ok {
		return
	}

	covered := t.overlapping(srcCat, Span{Start: 0, End: math.MaxUint64})

	cursor := Span{}
	for _, e := range covered {
		if !cursor.Adjacent(e.src.span) {
			gap := Span{Start: cursor.End, End: e.src.span.Start}
			t.tree.ReplaceOrInsert(entry{
				src: ref{cat: srcCat, span: gap},
				dst: ref{cat: dstCat, span: gap},
			})
		}

		cursor = e.src.span
	}
}

// overlapping returns every rule whose source span intersects s in cat,
// ascending by source start. Stored rules of one category never overlap
// each other, so every hit sits in one contiguous run of the tree.
func (t *Table) overlapping(cat category.Category, s Span) []entry {
	if s.Empty() {
		return nil
	}

	probe := entry{src: ref{cat: cat, span: s}}

	var hits []entry
	t.tree.AscendGreaterOrEqual(probe, func(e entry) bool {
		if e.src.cat != cat || !e.src.span.Overlaps(s) {
			return false
		}

		hits = append(hits, e)
		return true
	})

	return hits
}
