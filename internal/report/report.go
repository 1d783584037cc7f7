// Package report renders layouts and score reports as text for the CLI.
package report

import (
	"fmt"
	"io"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
)

// maxContributors bounds how many top-magnitude substrings are listed per
// rule in a detailed report.
const maxContributors = 5

// WriteLayout writes the base layer of l as a staggered grid.
func WriteLayout(w io.Writer, l *keyboard.Layout) error {
	_, err := fmt.Fprintln(w, l)
	return err
}

// WriteResult writes a layout followed by its score. When the result
// carries a per-rule breakdown, each rule line lists its subtotal and the
// substrings that contributed the most weight, largest magnitude first.
func WriteResult(w io.Writer, l *keyboard.Layout, r penalty.Result) error {
	if err := WriteLayout(w, l); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "total: %v; scaled: %v\n", r.Total, r.Scaled); err != nil {
		return err
	}
	for i := range r.Rules {
		rule := &r.Rules[i]
		if _, err := fmt.Fprintf(w, "%s: %v  /", rule.Name, rule.Total); err != nil {
			return err
		}
		for _, c := range rule.TopContributors(maxContributors) {
			if _, err := fmt.Fprintf(w, " %q: %v;", c.Keys, c.Weight); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
