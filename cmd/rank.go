// File: cmd/rank.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
	"github.com/xkilldash9x/layoutsmith/internal/report"
)

// newRankCmd creates the `rank` command: score every built-in layout
// against a corpus with full per-rule breakdowns.
func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <corpus>",
		Short: "Score the well-known reference layouts against a corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus(args[0])
			if err != nil {
				return err
			}
			idx, err := buildIndex(corpus)
			if err != nil {
				return err
			}

			scorer := penalty.NewScorer()
			for _, preset := range keyboard.Presets() {
				result := scorer.Score(idx, preset.Layout, true)
				fmt.Fprintf(os.Stdout, "Reference: %s\n", preset.Name)
				if err := report.WriteResult(os.Stdout, preset.Layout, result); err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout)
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newRankCmd())
}
