package penalty

import (
	"math"
	"sort"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
)

// RuleResult is the per-rule slice of a detailed score: the accumulated
// subtotal and the weight contributed by each triggering substring.
type RuleResult struct {
	Name     string
	Total    float64
	HighKeys map[string]float64
}

// Contributor is a substring and the total weight it contributed to one
// rule.
type Contributor struct {
	Keys   string
	Weight float64
}

// TopContributors returns the n substrings with the largest absolute
// contribution, sorted by descending magnitude. Ties are broken by the
// substring itself so the order is stable across runs.
func (r *RuleResult) TopContributors(n int) []Contributor {
	out := make([]Contributor, 0, len(r.HighKeys))
	for k, w := range r.HighKeys {
		out = append(out, Contributor{Keys: k, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := math.Abs(out[i].Weight), math.Abs(out[j].Weight)
		if ai != aj {
			return ai > aj
		}
		return out[i].Keys < out[j].Keys
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Result is the outcome of scoring one layout: the grand total, the total
// scaled by corpus length (the fitness metric searches compare), and the
// per-rule breakdown when it was requested.
type Result struct {
	Total  float64
	Scaled float64
	Rules  []RuleResult
}

// Scorer evaluates the rule catalog against quartad indexes. It holds no
// mutable state between calls; scoring is a pure function of the layout
// and the index, so one Scorer may be shared across goroutines.
type Scorer struct {
	rules []Rule
}

// NewScorer builds a scorer over the fixed catalog.
func NewScorer() *Scorer {
	return &Scorer{rules: Catalog()}
}

// Rules exposes the catalog, in evaluation order.
func (s *Scorer) Rules() []Rule { return s.rules }

// Score evaluates every rule against every counted quartad, resolving keys
// through the candidate layout's position map. A quartad whose final
// character the layout cannot type contributes nothing. The detailed flag
// only switches the per-rule breakdown on; it never changes the totals.
func (s *Scorer) Score(idx *QuartadIndex, layout *keyboard.Layout, detailed bool) Result {
	res := Result{}
	if detailed {
		res.Rules = make([]RuleResult, len(s.rules))
		for i, r := range s.rules {
			res.Rules[i] = RuleResult{Name: r.Name, HighKeys: make(map[string]float64)}
		}
	}

	m := layout.PositionMap()
	for quartad, count := range idx.counts {
		s.scoreQuartad(&res, m, quartad, count, detailed)
	}

	res.Scaled = res.Total / float64(idx.corpusLen)
	return res
}

// scoreQuartad resolves the quartad back to front into the current key and
// up to three predecessors, then applies each rule weighted by the
// occurrence count. Missing predecessors stay nil; the rules treat that as
// a short context, not an error.
func (s *Scorer) scoreQuartad(res *Result, m *keyboard.PositionMap, quartad string, count int, detailed bool) {
	runes := []rune(quartad)
	n := len(runes)
	if n == 0 {
		return
	}

	curr := m.Get(runes[n-1])
	if curr == nil {
		return
	}
	var old1, old2, old3 *keyboard.KeyPress
	if n > 1 {
		old1 = m.Get(runes[n-2])
	}
	if n > 2 {
		old2 = m.Get(runes[n-3])
	}
	if n > 3 {
		old3 = m.Get(runes[n-4])
	}

	for i, rule := range s.rules {
		p := rule.eval(curr, old1, old2, old3)
		if p == 0 {
			continue
		}
		w := p * float64(count)
		res.Total += w
		if detailed {
			res.Rules[i].Total += w
			keys := runes
			if rule.Context < n {
				keys = runes[n-rule.Context:]
			}
			res.Rules[i].HighKeys[string(keys)] += w
		}
	}
}
