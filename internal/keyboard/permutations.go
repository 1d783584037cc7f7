package keyboard

import "iter"

// Permutations enumerates every layout reachable from base by swapping
// depth disjoint position pairs drawn from the swappable set. Each
// combination of pairs is produced exactly once; emission order is not
// part of the contract. Depth 0 yields a single copy of base.
//
// Layouts are generated lazily, so callers can stop ranging early without
// paying for the full neighborhood.
func Permutations(base *Layout, depth int) iter.Seq[*Layout] {
	return func(yield func(*Layout) bool) {
		var used [NumSwappable]bool
		pairs := make([][2]int, 0, depth)

		// Pairs are built in canonical order: each pair holds its smaller
		// index first, and successive pairs have strictly increasing first
		// indices. Every set of disjoint pairs has exactly one such
		// ordering, which is what makes each combination unique.
		var emit func(from int) bool
		emit = func(from int) bool {
			if len(pairs) == depth {
				l := base.Clone()
				for _, p := range pairs {
					l.swap(swappablePositions[p[0]], swappablePositions[p[1]])
				}
				return yield(l)
			}
			for a := from; a < NumSwappable; a++ {
				if used[a] {
					continue
				}
				used[a] = true
				for b := a + 1; b < NumSwappable; b++ {
					if used[b] {
						continue
					}
					used[b] = true
					pairs = append(pairs, [2]int{a, b})
					ok := emit(a + 1)
					pairs = pairs[:len(pairs)-1]
					used[b] = false
					if !ok {
						used[a] = false
						return false
					}
				}
				used[a] = false
			}
			return true
		}
		emit(0)
	}
}
