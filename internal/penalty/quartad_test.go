package penalty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
)

func refMap() *keyboard.PositionMap {
	return keyboard.Initial.PositionMap()
}

func TestBuildQuartadIndex(t *testing.T) {
	t.Run("EmptyCorpus", func(t *testing.T) {
		_, err := BuildQuartadIndex("", refMap())
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("RunOfFourTypableChars", func(t *testing.T) {
		idx, err := BuildQuartadIndex("aaaa", refMap())
		require.NoError(t, err)
		assert.Equal(t, 1, idx.Count("a"))
		assert.Equal(t, 1, idx.Count("aa"))
		assert.Equal(t, 1, idx.Count("aaa"))
		assert.Equal(t, 1, idx.Count("aaaa"))
		assert.Equal(t, 4, idx.Distinct())
	})

	t.Run("WindowClampsToFour", func(t *testing.T) {
		idx, err := BuildQuartadIndex("abcde", refMap())
		require.NoError(t, err)
		assert.Equal(t, 1, idx.Count("abcd"))
		assert.Equal(t, 1, idx.Count("bcde"))
		assert.Equal(t, 0, idx.Count("abcde"))
	})

	t.Run("UnmappedCharacterResetsWindow", func(t *testing.T) {
		idx, err := BuildQuartadIndex("ab#cd", refMap())
		require.NoError(t, err)
		assert.Equal(t, 1, idx.Count("a"))
		assert.Equal(t, 1, idx.Count("ab"))
		assert.Equal(t, 1, idx.Count("c"))
		assert.Equal(t, 1, idx.Count("cd"))
		for quartad := range map[string]int{"b#": 0, "#c": 0, "ab#cd": 0, "b#c": 0} {
			assert.Zero(t, idx.Count(quartad), "no quartad may span the unmapped character: %q", quartad)
		}
		assert.Equal(t, 4, idx.Distinct())
	})

	t.Run("RepeatsAccumulate", func(t *testing.T) {
		idx, err := BuildQuartadIndex("the the", refMap())
		require.NoError(t, err)
		// Space is not typable on the reference layout, so each word
		// restarts the window.
		assert.Equal(t, 2, idx.Count("th"))
		assert.Equal(t, 2, idx.Count("the"))
		assert.Equal(t, 0, idx.Count("e t"))
	})

	t.Run("NewlineBehavesLikeSpace", func(t *testing.T) {
		withNewline, err := BuildQuartadIndex("ab\ncd", refMap())
		require.NoError(t, err)
		withSpace, err := BuildQuartadIndex("ab cd", refMap())
		require.NoError(t, err)
		for _, q := range []string{"a", "ab", "c", "cd"} {
			assert.Equal(t, withSpace.Count(q), withNewline.Count(q), "quartad %q", q)
		}
		assert.Equal(t, withSpace.Distinct(), withNewline.Distinct())
	})

	t.Run("CorpusLen", func(t *testing.T) {
		corpus := strings.Repeat("the quick brown fox ", 3)
		idx, err := BuildQuartadIndex(corpus, refMap())
		require.NoError(t, err)
		assert.Equal(t, len(corpus), idx.CorpusLen())
	})
}
