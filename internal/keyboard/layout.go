package keyboard

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Unused is the sentinel character for a key slot with no assignment.
// Unused slots are never typable and so never appear in a position map.
const Unused rune = 0

// ErrPositionOutOfRange reports a swap index outside [0, NumKeys).
var ErrPositionOutOfRange = errors.New("keyboard: position out of range")

// Layer assigns one character to each physical key slot.
type Layer KeyMap[rune]

// Layout is a pair of layers over the same physical grid: the unshifted
// (base) layer and the shifted layer. A swap always moves both layers in
// lockstep, so a base/shift character pair stays on one physical key.
type Layout struct {
	base    Layer
	shifted Layer
}

// NewLayout builds a layout from explicit base and shifted layers.
func NewLayout(base, shifted Layer) *Layout {
	return &Layout{base: base, shifted: shifted}
}

// descriptorIdxs maps each key slot to its offset in a flat layout
// descriptor. The shifted layer sits at the same offsets plus 39.
var descriptorIdxs = KeyMap[int]{
	0, 1, 2, 3, 4 /**/, 6, 7, 8, 9, 10, 11,
	13, 14, 15, 16, 17 /**/, 19, 20, 21, 22, 23, 24,
	26, 27, 28, 29, 30 /**/, 32, 33, 34, 35, 36, 37,
}

const shiftedDescriptorOffset = 39

// ParseLayout reads a layout from a flat descriptor string. Offsets missing
// from a short descriptor fill with the Unused sentinel; a malformed
// descriptor is therefore not an error, it just leaves keys unassigned.
func ParseLayout(s string) *Layout {
	chars := []rune(s)
	at := func(i int) rune {
		if i < len(chars) {
			return chars[i]
		}
		return Unused
	}

	var l Layout
	for pos := 0; pos < NumKeys; pos++ {
		idx := descriptorIdxs[pos]
		l.base[pos] = at(idx)
		l.shifted[pos] = at(idx + shiftedDescriptorOffset)
	}
	return &l
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := *l
	return &c
}

// Base returns the character on the unshifted layer at pos.
func (l *Layout) Base(pos int) rune { return l.base[pos] }

// Shifted returns the character on the shifted layer at pos.
func (l *Layout) Shifted(pos int) rune { return l.shifted[pos] }

// Swap exchanges the keys at positions i and j on both layers. Swapping a
// position with itself is a no-op; an out-of-range position is a contract
// violation and is reported as an error.
func (l *Layout) Swap(i, j int) error {
	if i < 0 || i >= NumKeys {
		return fmt.Errorf("%w: %d", ErrPositionOutOfRange, i)
	}
	if j < 0 || j >= NumKeys {
		return fmt.Errorf("%w: %d", ErrPositionOutOfRange, j)
	}
	l.swap(i, j)
	return nil
}

// swap is the unchecked form used by callers that draw positions from the
// swappable set and cannot go out of range.
func (l *Layout) swap(i, j int) {
	l.base[i], l.base[j] = l.base[j], l.base[i]
	l.shifted[i], l.shifted[j] = l.shifted[j], l.shifted[i]
}

// Shuffle applies times independent random swaps, each choosing two
// distinct positions uniformly from the swappable set. Anchored positions
// never move.
func (l *Layout) Shuffle(rng *rand.Rand, times int) {
	for n := 0; n < times; n++ {
		i, j := shufflePositions(rng)
		l.swap(i, j)
	}
}

// shufflePositions draws two distinct indices from the swappable set and
// resolves them to physical positions.
func shufflePositions(rng *rand.Rand) (int, int) {
	i := rng.Intn(NumSwappable)
	j := rng.Intn(NumSwappable - 1)
	if j >= i {
		j++
	}
	return swappablePositions[i], swappablePositions[j]
}

// String renders the base layer as three staggered rows plus the thumb
// key, with a bar between the hands.
func (l *Layout) String() string {
	return l.base.String()
}

func (la Layer) String() string {
	var b strings.Builder
	cell := func(r rune) rune {
		if r == Unused {
			return ' '
		}
		return r
	}
	writeRow := func(lo, split, hi int) {
		for i := lo; i < hi; i++ {
			if i == split {
				b.WriteString("| ")
			}
			b.WriteRune(cell(la[i]))
			if i < hi-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	writeRow(0, 5, 11)
	writeRow(11, 16, 22)
	writeRow(22, 27, 32)
	b.WriteString("        ")
	b.WriteRune(cell(la[ThumbPosition]))
	return b.String()
}
