package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanOverlaps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b Span
		want bool
	}{
		{"identical", NewSpan(10, 5), NewSpan(10, 5), true},
		{"contained", NewSpan(10, 10), NewSpan(12, 3), true},
		{"partial", NewSpan(10, 10), NewSpan(15, 10), true},
		{"shared single point", NewSpan(10, 5), NewSpan(14, 5), true},
		{"touching", NewSpan(10, 5), NewSpan(15, 5), false},
		{"disjoint", NewSpan(10, 5), NewSpan(20, 5), false},
		{"empty probe", NewSpan(12, 0), NewSpan(10, 5), false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap is symmetric")
		})
	}
}

func TestSpanAdjacent(t *testing.T) {
	t.Parallel()

	assert.True(t, NewSpan(10, 5).Adjacent(NewSpan(15, 5)))
	assert.False(t, NewSpan(10, 5).Adjacent(NewSpan(16, 5)))
	assert.False(t, NewSpan(15, 5).Adjacent(NewSpan(10, 5)), "adjacency is directional")
}

func TestSpanClip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewSpan(15, 5), NewSpan(10, 10).Clip(NewSpan(15, 10)))
	assert.Equal(t, NewSpan(12, 3), NewSpan(10, 10).Clip(NewSpan(12, 3)))
	assert.Equal(t, Span{}, NewSpan(10, 5).Clip(NewSpan(20, 5)))
}

func TestSpanShift(t *testing.T) {
	t.Parallel()

	up := NewSpan(79, 1).Shift(50, 52)
	assert.Equal(t, NewSpan(81, 1), up)

	down := NewSpan(81, 1).Shift(25, 18)
	assert.Equal(t, NewSpan(74, 1), down)

	assert.Equal(t, NewSpan(7, 3), NewSpan(7, 3).Shift(40, 40))
}

func TestSpanLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), Point(9).Len()-1)
	assert.Equal(t, uint64(10), NewSpan(5, 10).Len())
	assert.True(t, NewSpan(5, 0).Empty())
	assert.False(t, Point(5).Empty())
}
