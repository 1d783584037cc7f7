// Package penalty turns a text corpus into counted typing contexts and
// scores candidate layouts against a fixed catalog of ergonomic rules.
package penalty

import (
	"errors"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
)

// maxQuartadLen is the longest typing context a rule can look at: the
// current key plus up to three predecessors.
const maxQuartadLen = 4

// ErrEmptyCorpus reports a corpus with no content. Scaled penalties divide
// by the corpus length, so a zero-length corpus cannot be scored.
var ErrEmptyCorpus = errors.New("penalty: empty corpus")

// QuartadIndex counts every trailing window of up to four typable corpus
// characters. It is built once per corpus against a fixed reference layout
// and then shared, read-only, across every candidate scored in a run; from
// that point scoring costs are proportional to the number of distinct
// quartads, not the corpus length.
type QuartadIndex struct {
	counts    map[string]int
	corpusLen int
}

// BuildQuartadIndex scans the corpus once, maintaining a trailing window of
// at most four characters. Newlines count as spaces. A character the
// reference map cannot resolve resets the window, so no quartad ever spans
// an untypable character. The reference map decides only typability; it
// never changes which characters a window contains.
func BuildQuartadIndex(corpus string, ref *keyboard.PositionMap) (*QuartadIndex, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	idx := &QuartadIndex{
		counts:    make(map[string]int),
		corpusLen: len(corpus),
	}

	runes := []rune(corpus)
	start := 0
	for i, c := range runes {
		if c == '\n' {
			c = ' '
			runes[i] = c
		}
		if ref.Get(c) == nil {
			start = i + 1
			continue
		}
		if i+1-start > maxQuartadLen {
			start = i + 1 - maxQuartadLen
		}
		idx.counts[string(runes[start:i+1])]++
	}
	return idx, nil
}

// Count returns the number of occurrences recorded for quartad.
func (q *QuartadIndex) Count(quartad string) int { return q.counts[quartad] }

// Distinct returns the number of distinct quartads in the index.
func (q *QuartadIndex) Distinct() int { return len(q.counts) }

// CorpusLen returns the length of the corpus the index was built from.
func (q *QuartadIndex) CorpusLen() int { return q.corpusLen }
