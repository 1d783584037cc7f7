package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionMap(t *testing.T) {
	m := QWERTY.PositionMap()

	t.Run("Attributes", func(t *testing.T) {
		a := m.Get('a')
		require.NotNil(t, a)
		assert.Equal(t, KeyPress{Key: 'a', Pos: 11, Finger: Pinky, Hand: Left, Row: HomeRow}, *a)

		b := m.Get('b')
		require.NotNil(t, b)
		assert.Equal(t, 26, b.Pos)
		assert.True(t, b.Center)
		assert.Equal(t, BottomRow, b.Row)

		j := m.Get('j')
		require.NotNil(t, j)
		assert.Equal(t, Right, j.Hand)
		assert.Equal(t, Index, j.Finger)
	})

	t.Run("ShiftedLayerResolves", func(t *testing.T) {
		q := m.Get('Q')
		require.NotNil(t, q)
		assert.Equal(t, 0, q.Pos)
	})

	t.Run("AbsentCharacters", func(t *testing.T) {
		assert.Nil(t, m.Get('#'))
		assert.Nil(t, m.Get(' '))
		assert.Nil(t, m.Get(rune(200)), "non-ASCII is always absent")
		assert.Nil(t, m.Get(Unused))
	})

	t.Run("ThumbKey", func(t *testing.T) {
		e := Initial.PositionMap().Get('e')
		require.NotNil(t, e)
		assert.Equal(t, ThumbPosition, e.Pos)
		assert.Equal(t, Thumb, e.Finger)
		assert.Equal(t, ThumbRow, e.Row)
	})

	t.Run("LaterScanWins", func(t *testing.T) {
		// The same character on both layers at different positions: the
		// shifted layer is scanned last, so it decides.
		var base, shifted Layer
		base[0] = 'x'
		shifted[5] = 'x'
		l := NewLayout(base, shifted)
		kp := l.PositionMap().Get('x')
		require.NotNil(t, kp)
		assert.Equal(t, 5, kp.Pos)
	})
}
