package penalty

import "github.com/xkilldash9x/layoutsmith/internal/keyboard"

// Rule is one entry of the scoring catalog: a pure function over a typing
// context of Context keys. curr is always resolvable; predecessors may be
// nil when the context window is short, and every rule must return 0 in
// that case rather than guess.
type Rule struct {
	Name    string
	Context int
	eval    func(curr, old1, old2, old3 *keyboard.KeyPress) float64
}

// basePenalty is the per-position reach cost charged for every keystroke.
// Home positions under the resting fingers are free, the thumb is free,
// and cost grows toward the corners and the center columns.
var basePenalty = keyboard.KeyMap[float64]{
	3.0, 1.0, 1.0, 1.0, 3.0 /**/, 3.0, 1.0, 1.0, 1.0, 3.0, 4.0,
	0.5, 0.5, 0.0, 0.0, 1.0 /**/, 1.0, 0.0, 0.0, 0.5, 0.5, 1.0,
	3.0, 2.5, 2.0, 2.0, 3.0 /**/, 3.0, 2.0, 2.0, 2.5, 3.0,
	0.0,
}

// Catalog returns the fixed, ordered rule set. The order is part of the
// report format; the weights and triggers are the contract.
func Catalog() []Rule {
	return []Rule{
		{
			Name: "base", Context: 1,
			eval: func(curr, _, _, _ *keyboard.KeyPress) float64 {
				return basePenalty[curr.Pos]
			},
		},
		{
			// Same finger on two different keys in a row. Harder still
			// when either key sits in a center column.
			Name: "same finger", Context: 2,
			eval: func(curr, old1, _, _ *keyboard.KeyPress) float64 {
				if old1 == nil || curr.Hand != old1.Hand || curr.Finger != old1.Finger || curr.Pos == old1.Pos {
					return 0
				}
				p := 5.0
				if curr.Center {
					p += 5.0
				}
				if old1.Center {
					p += 5.0
				}
				return p
			},
		},
		{
			Name: "long jump hand", Context: 2,
			eval: func(curr, old1, _, _ *keyboard.KeyPress) float64 {
				if old1 != nil && curr.Hand == old1.Hand && rowJump(curr, old1) {
					return 1.0
				}
				return 0
			},
		},
		{
			Name: "long jump", Context: 2,
			eval: func(curr, old1, _, _ *keyboard.KeyPress) float64 {
				if old1 != nil && curr.Hand == old1.Hand && curr.Finger == old1.Finger && rowJump(curr, old1) {
					return 10.0
				}
				return 0
			},
		},
		{
			// Top<->bottom jump split across adjacent fingers. The
			// index finger only counts when it lands on the bottom row
			// coming down from the top.
			Name: "long jump consecutive", Context: 2,
			eval: func(curr, old1, _, _ *keyboard.KeyPress) float64 {
				if old1 == nil || curr.Hand != old1.Hand || !rowJump(curr, old1) {
					return 0
				}
				switch {
				case curr.Finger == keyboard.Ring && old1.Finger == keyboard.Pinky,
					curr.Finger == keyboard.Pinky && old1.Finger == keyboard.Ring,
					curr.Finger == keyboard.Middle && old1.Finger == keyboard.Ring,
					curr.Finger == keyboard.Ring && old1.Finger == keyboard.Middle:
					return 5.0
				case curr.Finger == keyboard.Index &&
					(old1.Finger == keyboard.Middle || old1.Finger == keyboard.Ring) &&
					curr.Row == keyboard.BottomRow && old1.Row == keyboard.TopRow:
					return 5.0
				}
				return 0
			},
		},
		{
			// Pinky reaching above the ring finger, e.g. QA or PL on
			// Qwerty.
			Name: "pinky/ring twist", Context: 2,
			eval: func(curr, old1, _, _ *keyboard.KeyPress) float64 {
				if old1 == nil || curr.Hand != old1.Hand {
					return 0
				}
				if curr.Finger == keyboard.Ring && old1.Finger == keyboard.Pinky &&
					old1.Row == keyboard.TopRow &&
					(curr.Row == keyboard.HomeRow || curr.Row == keyboard.BottomRow) {
					return 10.0
				}
				if curr.Finger == keyboard.Pinky && old1.Finger == keyboard.Ring &&
					curr.Row == keyboard.TopRow &&
					(old1.Row == keyboard.HomeRow || old1.Row == keyboard.BottomRow) {
					return 10.0
				}
				return 0
			},
		},
		{
			// A roll that reverses direction around the pinky, e.g.
			// ring-pinky-middle.
			Name: "roll reversal", Context: 3,
			eval: func(curr, old1, old2, _ *keyboard.KeyPress) float64 {
				if old1 == nil || old2 == nil || curr.Hand != old1.Hand || old1.Hand != old2.Hand {
					return 0
				}
				if old1.Finger == keyboard.Pinky &&
					(curr.Finger == keyboard.Middle && old2.Finger == keyboard.Ring ||
						curr.Finger == keyboard.Ring && old2.Finger == keyboard.Middle) {
					return 20.0
				}
				return 0
			},
		},
		{
			Name: "same hand", Context: 4,
			eval: func(curr, old1, old2, old3 *keyboard.KeyPress) float64 {
				if old1 == nil || old2 == nil || old3 == nil {
					return 0
				}
				if curr.Hand == old1.Hand && old1.Hand == old2.Hand && old2.Hand == old3.Hand {
					return 0.5
				}
				return 0
			},
		},
		{
			Name: "alternating hand", Context: 4,
			eval: func(curr, old1, old2, old3 *keyboard.KeyPress) float64 {
				if old1 == nil || old2 == nil || old3 == nil {
					return 0
				}
				if curr.Hand != old1.Hand && old1.Hand != old2.Hand && old2.Hand != old3.Hand {
					return 0.5
				}
				return 0
			},
		},
		{
			Name: "roll out", Context: 2,
			eval: func(curr, old1, _, _ *keyboard.KeyPress) float64 {
				if old1 != nil && curr.Hand == old1.Hand && rollsOut(old1.Finger, curr.Finger) {
					return 0.125
				}
				return 0
			},
		},
		{
			Name: "roll in", Context: 2,
			eval: func(curr, old1, _, _ *keyboard.KeyPress) float64 {
				if old1 != nil && curr.Hand == old1.Hand && rollsIn(old1.Finger, curr.Finger) {
					return -0.125
				}
				return 0
			},
		},
		{
			// Same finger jumping top<->bottom with one key in between.
			Name: "long jump sandwich", Context: 3,
			eval: func(curr, _, old2, _ *keyboard.KeyPress) float64 {
				if old2 != nil && curr.Hand == old2.Hand && curr.Finger == old2.Finger && rowJump(curr, old2) {
					return 3.0
				}
				return 0
			},
		},
		{
			// Three keys marching straight through the rows while the
			// fingers roll consistently in one direction.
			Name: "twist", Context: 3,
			eval: func(curr, old1, old2, _ *keyboard.KeyPress) float64 {
				if old1 == nil || old2 == nil || curr.Hand != old1.Hand || old1.Hand != old2.Hand {
					return 0
				}
				descending := old2.Row == keyboard.TopRow && old1.Row == keyboard.HomeRow && curr.Row == keyboard.BottomRow
				ascending := old2.Row == keyboard.BottomRow && old1.Row == keyboard.HomeRow && curr.Row == keyboard.TopRow
				if !descending && !ascending {
					return 0
				}
				outward := rollsOut(old2.Finger, old1.Finger) && rollsOut(old1.Finger, curr.Finger)
				inward := rollsIn(old2.Finger, old1.Finger) && rollsIn(old1.Finger, curr.Finger)
				if outward || inward {
					return 10.0
				}
				return 0
			},
		},
	}
}

// rowJump reports a jump between the top and bottom rows in either
// direction.
func rowJump(a, b *keyboard.KeyPress) bool {
	return a.Row == keyboard.TopRow && b.Row == keyboard.BottomRow ||
		a.Row == keyboard.BottomRow && b.Row == keyboard.TopRow
}

// rollsOut reports a pinky-ward finger transition. Rolls starting at the
// thumb are not counted; the thumb is not part of the row the fingers
// roll along.
func rollsOut(from, to keyboard.Finger) bool {
	return from != keyboard.Thumb && to > from
}

// rollsIn reports an index-ward finger transition.
func rollsIn(from, to keyboard.Finger) bool {
	return to < from
}
