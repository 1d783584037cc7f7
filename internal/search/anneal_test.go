package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
)

const annealCorpus = "the quick brown fox jumps over the lazy dog and then " +
	"the quick brown fox jumps over the lazy dog again"

func testIndex(t *testing.T) *penalty.QuartadIndex {
	t.Helper()
	idx, err := penalty.BuildQuartadIndex(annealCorpus, keyboard.Initial.PositionMap())
	require.NoError(t, err)
	return idx
}

func TestAnnealerRun(t *testing.T) {
	idx := testIndex(t)
	scorer := penalty.NewScorer()

	t.Run("ReproducibleWithFixedSeed", func(t *testing.T) {
		run := func() []Entry {
			tracker := NewTracker(3)
			a := NewAnnealer(scorer, rand.New(rand.NewSource(99)), zap.NewNop())
			require.NoError(t, a.Run(context.Background(), idx, keyboard.QWERTY, Options{MaxSwaps: 3}, tracker))
			return tracker.Best()
		}
		first, second := run(), run()
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Result.Scaled, second[i].Result.Scaled)
			assert.Equal(t, first[i].Layout.String(), second[i].Layout.String())
		}
	})

	t.Run("FindsImprovementOverQwerty", func(t *testing.T) {
		tracker := NewTracker(1)
		a := NewAnnealer(scorer, rand.New(rand.NewSource(7)), zap.NewNop())
		require.NoError(t, a.Run(context.Background(), idx, keyboard.QWERTY, Options{MaxSwaps: 3}, tracker))

		start := scorer.Score(idx, keyboard.QWERTY, false)
		require.Equal(t, 1, tracker.Len())
		assert.Less(t, tracker.Best()[0].Result.Scaled, start.Scaled,
			"ten thousand iterations should beat stock qwerty on this corpus")
	})

	t.Run("CancellationStopsTheRun", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		a := NewAnnealer(scorer, rand.New(rand.NewSource(1)), zap.NewNop())
		err := a.Run(ctx, idx, keyboard.QWERTY, Options{MaxSwaps: 3}, NewTracker(1))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("DetailedEntriesCarryBreakdowns", func(t *testing.T) {
		tracker := NewTracker(1)
		a := NewAnnealer(scorer, rand.New(rand.NewSource(5)), zap.NewNop())
		require.NoError(t, a.Run(context.Background(), idx, keyboard.QWERTY, Options{MaxSwaps: 2, Detailed: true}, tracker))
		require.Equal(t, 1, tracker.Len())
		assert.NotEmpty(t, tracker.Best()[0].Result.Rules)
	})
}
