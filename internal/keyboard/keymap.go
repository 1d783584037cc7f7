// Package keyboard models the physical key grid, character layouts over it,
// and the swap mechanics the search drivers mutate layouts with.
package keyboard

// KeyMap format:
//    LEFT HAND   |    RIGHT HAND
//  0  1  2  3  4 |  5  6  7  8  9 10
// 11 12 13 14 15 | 16 17 18 19 20 21
// 22 23 24 25 26 | 27 28 29 30 31
//
//             32 (thumb key)

// NumKeys is the number of physical key slots. The slot index is the sole
// identity of a physical key.
const NumKeys = 33

// ThumbPosition is the index of the single thumb key.
const ThumbPosition = 32

// KeyMap is a fixed per-position container, one slot per physical key.
type KeyMap[T any] [NumKeys]T

// Finger identifies which finger rests on a key. The ordinal encodes
// distance from the center of the keyboard: Thumb is innermost, Pinky
// outermost. Roll direction checks compare these ordinals.
type Finger uint8

const (
	Thumb Finger = iota
	Index
	Middle
	Ring
	Pinky
)

func (f Finger) String() string {
	switch f {
	case Thumb:
		return "thumb"
	case Index:
		return "index"
	case Middle:
		return "middle"
	case Ring:
		return "ring"
	case Pinky:
		return "pinky"
	}
	return "unknown"
}

// Hand identifies the left or right half of the board.
type Hand uint8

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Row identifies the physical row a key sits on.
type Row uint8

const (
	TopRow Row = iota
	HomeRow
	BottomRow
	ThumbRow
)

func (r Row) String() string {
	switch r {
	case TopRow:
		return "top"
	case HomeRow:
		return "home"
	case BottomRow:
		return "bottom"
	case ThumbRow:
		return "thumb"
	}
	return "unknown"
}

// Static per-position ergonomic metadata. These tables never change at
// runtime; every candidate layout shares them.

var keyFingers = KeyMap[Finger]{
	Pinky, Ring, Middle, Index, Index /**/, Index, Index, Middle, Ring, Pinky, Pinky,
	Pinky, Ring, Middle, Index, Index /**/, Index, Index, Middle, Ring, Pinky, Pinky,
	Pinky, Ring, Middle, Index, Index /**/, Index, Index, Middle, Ring, Pinky,
	Thumb,
}

var keyHands = KeyMap[Hand]{
	Left, Left, Left, Left, Left /**/, Right, Right, Right, Right, Right, Right,
	Left, Left, Left, Left, Left /**/, Right, Right, Right, Right, Right, Right,
	Left, Left, Left, Left, Left /**/, Right, Right, Right, Right, Right,
	Left,
}

var keyRows = KeyMap[Row]{
	TopRow, TopRow, TopRow, TopRow, TopRow /**/, TopRow, TopRow, TopRow, TopRow, TopRow, TopRow,
	HomeRow, HomeRow, HomeRow, HomeRow, HomeRow /**/, HomeRow, HomeRow, HomeRow, HomeRow, HomeRow, HomeRow,
	BottomRow, BottomRow, BottomRow, BottomRow, BottomRow /**/, BottomRow, BottomRow, BottomRow, BottomRow, BottomRow,
	ThumbRow,
}

// keyCenterColumn marks the innermost column per hand, where the index
// finger has to stretch sideways.
var keyCenterColumn = KeyMap[bool]{
	false, false, false, false, true /**/, true, false, false, false, false, false,
	false, false, false, false, true /**/, true, false, false, false, false, false,
	false, false, false, false, true /**/, true, false, false, false, false,
	false,
}

// swappablePositions lists the key slots eligible for random or enumerated
// swapping. Position 10 (the far top-right slot) and the thumb key are
// anchored and never move.
var swappablePositions = [...]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21,
	22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
}

// NumSwappable is the size of the swappable-position set.
const NumSwappable = 31

// SwappablePositions returns a copy of the swappable-position set.
func SwappablePositions() []int {
	out := make([]int, len(swappablePositions))
	copy(out, swappablePositions[:])
	return out
}
