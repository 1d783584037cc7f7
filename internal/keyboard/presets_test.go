package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 10)
	assert.Equal(t, "QWERTY", presets[0].Name)
	assert.Equal(t, "INITIAL", presets[len(presets)-1].Name)

	seen := make(map[string]bool)
	for _, p := range presets {
		assert.False(t, seen[p.Name], "duplicate preset name %s", p.Name)
		seen[p.Name] = true
	}
}

func TestPresetsTypeTheAlphabet(t *testing.T) {
	// Two presets are historically incomplete: MTGAP's grid carries no q
	// and Capewell's carries no m (it holds w twice instead).
	missing := map[string]rune{"MTGAP": 'q', "CAPEWELL": 'm'}

	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			pm := p.Layout.PositionMap()
			for c := 'a'; c <= 'z'; c++ {
				if missing[p.Name] == c {
					assert.Nil(t, pm.Get(c))
					continue
				}
				assert.NotNil(t, pm.Get(c), "%s cannot type %q", p.Name, c)
			}
		})
	}
}
