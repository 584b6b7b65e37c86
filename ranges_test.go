package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/category"
)

// exampleMappings is the 7-stage example table, one record per rule.
func exampleMappings() []Mapping {
	rules := []struct {
		src     category.Category
		triples [][3]uint64 // destination start, source start, length
	}{
		{category.Seed, [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
		{category.Soil, [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
		{category.Fertilizer, [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
		{category.Water, [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
		{category.Light, [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
		{category.Temperature, [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
		{category.Humidity, [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
	}

	var mappings []Mapping
	for _, r := range rules {
		dst, _ := r.src.Next()
		for _, tr := range r.triples {
			mappings = append(mappings, Mapping{
				Source:           r.src,
				SourceStart:      tr[1],
				Length:           tr[2],
				Destination:      dst,
				DestinationStart: tr[0],
			})
		}
	}

	return mappings
}

func TestRangesWorkerCountInvariant(t *testing.T) {
	t.Parallel()

	model, err := Build([]uint64{79, 14, 55, 13}, exampleMappings())
	require.NoError(t, err)

	sequential, ok := model.lowestForRanges(1)
	require.True(t, ok)
	assert.Equal(t, uint64(46), sequential)

	for workers := 2; workers <= 8; workers++ {
		parallel, ok := model.lowestForRanges(workers)
		require.True(t, ok)
		assert.Equal(t, sequential, parallel, "%d workers", workers)
	}
}

func TestConcurrentQueriesShareOneModel(t *testing.T) {
	t.Parallel()

	model, err := Build([]uint64{79, 14, 55, 13}, exampleMappings())
	require.NoError(t, err)

	done := make(chan uint64, 16)
	for i := 0; i < 16; i++ {
		go func() {
			v, _ := model.LowestLocationForRanges()
			done <- v
		}()
	}

	for i := 0; i < 16; i++ {
		assert.Equal(t, uint64(46), <-done)
	}
}
