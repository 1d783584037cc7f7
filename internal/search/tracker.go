package search

import (
	"sort"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
)

// Entry is an immutable snapshot of a layout and its score, detached from
// the live working layout the search keeps mutating.
type Entry struct {
	Layout *keyboard.Layout
	Result penalty.Result
}

// Tracker is a bounded collection of the best layouts seen, kept sorted
// ascending by scaled penalty. When two entries score identically the one
// inserted first stays ahead, so it is also the one retained when the
// tail is evicted.
type Tracker struct {
	capacity int
	entries  []Entry
}

// NewTracker creates a tracker that retains at most capacity entries.
func NewTracker(capacity int) *Tracker {
	if capacity < 1 {
		capacity = 1
	}
	return &Tracker{capacity: capacity, entries: make([]Entry, 0, capacity+1)}
}

// Add snapshots the layout and splices it into the sorted entries,
// evicting from the tail whenever the tracker grows past capacity.
func (t *Tracker) Add(layout *keyboard.Layout, result penalty.Result) {
	e := Entry{Layout: layout.Clone(), Result: result}

	// Upper-bound insertion point: after every entry that scores <= the
	// newcomer, which is what keeps equal scores in insertion order.
	at := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Result.Scaled > e.Result.Scaled
	})
	t.entries = append(t.entries, Entry{})
	copy(t.entries[at+1:], t.entries[at:])
	t.entries[at] = e

	if len(t.entries) > t.capacity {
		t.entries = t.entries[:t.capacity]
	}
}

// Len returns the number of retained entries.
func (t *Tracker) Len() int { return len(t.entries) }

// Best returns the retained entries, best first.
func (t *Tracker) Best() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
