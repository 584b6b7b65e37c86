// Package almanac resolves seed identifiers to the lowest Location they can
// reach through a chain of piecewise interval remappings.
//
// A Model is built once from already-parsed seed values and mapping records
// and never mutated afterwards. Every query is a read-only traversal of the
// translation table, so one Model serves any number of goroutines.
package almanac

import (
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"almanac/category"
	"almanac/internal/translate"
)

// Validation failures surfaced by Build.
var (
	ErrZeroLengthMapping = translate.ErrZeroLengthMapping
	ErrNotChainAdjacent  = translate.ErrNotChainAdjacent
)

// Mapping is one piecewise offset rule: Length identifiers from SourceStart
// in Source translate one-to-one onto the identifiers from DestinationStart
// in Destination. Destination must be the chain successor of Source.
type Mapping struct {
	Source           category.Category
	SourceStart      uint64
	Length           uint64
	Destination      category.Category
	DestinationStart uint64
}

// Model holds the seed inputs together with the translation table built
// from the mapping records.
//
// The seeds are stored uninterpreted: LowestLocationForPoints reads them as
// individual identifiers, LowestLocationForRanges as consecutive
// (start, length) pairs. Which reading applies is the caller's choice, not
// a property of the data.
type Model struct {
	seeds []uint64
	table *translate.Table
}

// Build validates the mapping records, loads them into a gap-filled
// translation table, and returns the finished Model. Records covering zero
// identifiers or mapping between non-adjacent categories are rejected.
// Rules overlapping an earlier rule of the same category replace it: last
// write wins.
func Build(seeds []uint64, mappings []Mapping) (*Model, error) {
	table := translate.NewTable()

	for _, m := range mappings {
		err := table.AddMapping(m.Source, m.SourceStart, m.Length, m.Destination, m.DestinationStart)
		if err != nil {
			return nil, fmt.Errorf("invalid mapping record: %w", err)
		}
	}

	for c := category.Seed; c.IsValid(); c++ {
		table.FillGaps(c)
	}

	return &Model{seeds: slices.Clone(seeds), table: table}, nil
}

// LowestLocationForPoints resolves every seed as an individual identifier
// and returns the smallest Location reached. ok is false when the model
// holds no seeds.
func (m *Model) LowestLocationForPoints() (lowest uint64, ok bool) {
	for _, seed := range m.seeds {
		v := m.table.Walk(category.Seed, translate.Point(seed))
		if !ok || v < lowest {
			lowest, ok = v, true
		}
	}

	return lowest, ok
}

// LowestLocationForRanges reads the seeds as consecutive (start, length)
// pairs and returns the smallest Location reachable from any of the ranges.
// A dangling value with no length partner is ignored; ok is false when no
// complete pair exists. Ranges resolve concurrently on up to GOMAXPROCS
// workers.
func (m *Model) LowestLocationForRanges() (uint64, bool) {
	return m.lowestForRanges(runtime.GOMAXPROCS(0))
}

func (m *Model) lowestForRanges(workers int) (uint64, bool) {
	var spans []translate.Span
	for i := 0; i+1 < len(m.seeds); i += 2 {
		spans = append(spans, translate.NewSpan(m.seeds[i], m.seeds[i+1]))
	}

	if len(spans) == 0 {
		return 0, false
	}

	// One result slot per range: tasks never share a slot and the fold
	// runs only after Wait returns.
	results := make([]uint64, len(spans))

	var group errgroup.Group
	group.SetLimit(workers)

	for i, s := range spans {
		i, s := i, s
		group.Go(func() error {
			results[i] = m.table.Walk(category.Seed, s)
			return nil
		})
	}

	_ = group.Wait() // walks are pure computation and never fail

	return slices.Min(results), true
}
