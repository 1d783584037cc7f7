package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutations(t *testing.T) {
	t.Run("DepthZeroYieldsBase", func(t *testing.T) {
		var got []*Layout
		for l := range Permutations(QWERTY, 0) {
			got = append(got, l)
		}
		require.Len(t, got, 1)
		assert.Equal(t, *QWERTY, *got[0])
	})

	t.Run("DepthOneCoversAllPairs", func(t *testing.T) {
		seen := make(map[Layout]int)
		count := 0
		for l := range Permutations(QWERTY, 1) {
			seen[*l]++
			count++
			assert.Equal(t, 2, diffPositions(QWERTY, l), "each candidate differs by exactly one swap")
		}
		// C(31, 2) distinct single-swap neighbors.
		assert.Equal(t, 31*30/2, count)
		assert.Len(t, seen, count, "no layout emitted twice")
	})

	t.Run("DepthTwoIsDisjointAndUnique", func(t *testing.T) {
		seen := make(map[Layout]bool)
		count := 0
		for l := range Permutations(QWERTY, 2) {
			require.False(t, seen[*l], "duplicate layout emitted")
			seen[*l] = true
			count++
			assert.Equal(t, 4, diffPositions(QWERTY, l), "two disjoint swaps touch four positions")
		}
		// C(31,4) subsets of four positions, times the 3 pairings of each.
		assert.Equal(t, 31*30*29*28/24*3, count)
	})

	t.Run("StopsEarly", func(t *testing.T) {
		count := 0
		for range Permutations(QWERTY, 1) {
			count++
			if count == 10 {
				break
			}
		}
		assert.Equal(t, 10, count)
	})

	t.Run("NeverTouchesAnchors", func(t *testing.T) {
		for l := range Permutations(Initial, 1) {
			assert.Equal(t, Initial.Base(10), l.Base(10))
			assert.Equal(t, Initial.Base(ThumbPosition), l.Base(ThumbPosition))
		}
	})
}

// diffPositions counts positions where the two layouts disagree.
func diffPositions(a, b *Layout) int {
	n := 0
	for pos := 0; pos < NumKeys; pos++ {
		if a.Base(pos) != b.Base(pos) || a.Shifted(pos) != b.Shifted(pos) {
			n++
		}
	}
	return n
}
