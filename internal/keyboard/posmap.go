package keyboard

// asciiRange bounds the characters a position map can resolve. Anything at
// or above it is unmapped by definition.
const asciiRange = 128

// KeyPress is the physical resolution of a single character under some
// layout: which key it sits on and that key's ergonomic attributes.
type KeyPress struct {
	Key    rune
	Pos    int
	Finger Finger
	Hand   Hand
	Row    Row
	Center bool
}

// PositionMap resolves a character to its physical key attributes under one
// layout. It is rebuilt from scratch per layout and never mutated after
// construction; a nil *KeyPress is the first-class "absent" value the
// scoring rules compare against.
type PositionMap struct {
	keys    [asciiRange]KeyPress
	present [asciiRange]bool
}

// PositionMap scans both layers in fixed order, base first, and records the
// attributes of every in-range character. If the same character occurs in
// both layers at different positions the shifted layer wins, because it is
// scanned last.
func (l *Layout) PositionMap() *PositionMap {
	var m PositionMap
	l.base.fillPositionMap(&m)
	l.shifted.fillPositionMap(&m)
	return &m
}

func (la Layer) fillPositionMap(m *PositionMap) {
	for pos, c := range la {
		if c <= 0 || c >= asciiRange {
			continue
		}
		m.keys[c] = KeyPress{
			Key:    c,
			Pos:    pos,
			Finger: keyFingers[pos],
			Hand:   keyHands[pos],
			Row:    keyRows[pos],
			Center: keyCenterColumn[pos],
		}
		m.present[c] = true
	}
}

// Get returns the keypress for c, or nil when c is unmapped. Characters
// outside the ASCII range are always unmapped.
func (m *PositionMap) Get(c rune) *KeyPress {
	if c < 0 || c >= asciiRange || !m.present[c] {
		return nil
	}
	return &m.keys[c]
}
