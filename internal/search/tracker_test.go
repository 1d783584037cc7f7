package search

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
)

func resultWithScaled(scaled float64) penalty.Result {
	return penalty.Result{Total: scaled * 100, Scaled: scaled}
}

func TestTracker(t *testing.T) {
	t.Run("BoundedAndSorted", func(t *testing.T) {
		tr := NewTracker(5)
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 100; i++ {
			tr.Add(keyboard.QWERTY, resultWithScaled(rng.Float64()))
			assert.LessOrEqual(t, tr.Len(), 5)
			best := tr.Best()
			assert.True(t, sort.SliceIsSorted(best, func(a, b int) bool {
				return best[a].Result.Scaled < best[b].Result.Scaled
			}))
		}
		assert.Equal(t, 5, tr.Len())
	})

	t.Run("KeepsTheBest", func(t *testing.T) {
		tr := NewTracker(3)
		for _, s := range []float64{0.9, 0.1, 0.5, 0.7, 0.3} {
			tr.Add(keyboard.QWERTY, resultWithScaled(s))
		}
		best := tr.Best()
		require.Len(t, best, 3)
		assert.Equal(t, 0.1, best[0].Result.Scaled)
		assert.Equal(t, 0.3, best[1].Result.Scaled)
		assert.Equal(t, 0.5, best[2].Result.Scaled)
	})

	t.Run("EqualScoresKeepInsertionOrder", func(t *testing.T) {
		tr := NewTracker(2)
		first := keyboard.QWERTY.Clone()
		second := keyboard.Dvorak.Clone()
		third := keyboard.Colemak.Clone()
		tr.Add(first, resultWithScaled(0.4))
		tr.Add(second, resultWithScaled(0.4))
		tr.Add(third, resultWithScaled(0.4))

		best := tr.Best()
		require.Len(t, best, 2)
		assert.Equal(t, first.String(), best[0].Layout.String(), "first inserted stays ahead")
		assert.Equal(t, second.String(), best[1].Layout.String(), "latest equal entry is the one evicted")
	})

	t.Run("SnapshotsAreIndependent", func(t *testing.T) {
		tr := NewTracker(1)
		working := keyboard.QWERTY.Clone()
		tr.Add(working, resultWithScaled(0.2))
		require.NoError(t, working.Swap(0, 1))
		assert.Equal(t, keyboard.QWERTY.String(), tr.Best()[0].Layout.String())
	})

	t.Run("MinimumCapacityIsOne", func(t *testing.T) {
		tr := NewTracker(0)
		tr.Add(keyboard.QWERTY, resultWithScaled(0.5))
		tr.Add(keyboard.Dvorak, resultWithScaled(0.1))
		require.Equal(t, 1, tr.Len())
		assert.Equal(t, 0.1, tr.Best()[0].Result.Scaled)
	})
}
