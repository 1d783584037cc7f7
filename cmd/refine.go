package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/layoutsmith/internal/observability"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
	"github.com/xkilldash9x/layoutsmith/internal/report"
	"github.com/xkilldash9x/layoutsmith/internal/search"
)

// newRefineCmd creates the `refine` command: exhaustive neighborhood
// hill-climbing from a starting layout.
func newRefineCmd() *cobra.Command {
	refineCmd := &cobra.Command{
		Use:   "refine <corpus> [layout]",
		Short: "Climb to a local optimum by enumerating nearby layouts",
		Args:  cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("search.top_k", cmd.Flags().Lookup("top")); err != nil {
				return err
			}
			if err := viper.BindPFlag("search.depth", cmd.Flags().Lookup("depth")); err != nil {
				return err
			}
			return viper.BindPFlag("search.workers", cmd.Flags().Lookup("workers"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()
			if err := viper.Unmarshal(cfg); err != nil {
				return fmt.Errorf("failed to apply flag overrides: %w", err)
			}

			corpus, err := loadCorpus(args[0])
			if err != nil {
				return err
			}
			start, err := loadStartLayout(args)
			if err != nil {
				return err
			}
			idx, err := buildIndex(corpus)
			if err != nil {
				return err
			}

			logger.Info("corpus indexed",
				zap.Int("corpus_bytes", idx.CorpusLen()),
				zap.Int("distinct_quartads", idx.Distinct()))

			refiner := search.NewRefiner(penalty.NewScorer(), logger)
			opts := search.RefineOptions{
				Depth:    cfg.Search.Depth,
				Workers:  cfg.Search.Workers,
				Detailed: cfg.Search.Debug,
			}

			tracker := search.NewTracker(cfg.Search.TopK)
			if _, _, err := refiner.Run(ctx, idx, start, opts, tracker); err != nil {
				return fmt.Errorf("refinement failed: %w", err)
			}

			for _, e := range tracker.Best() {
				fmt.Fprintln(os.Stdout)
				if err := report.WriteResult(os.Stdout, e.Layout, e.Result); err != nil {
					return err
				}
			}
			return nil
		},
	}

	refineCmd.Flags().IntP("top", "t", 1, "number of top layouts to retain and print")
	refineCmd.Flags().Int("depth", 1, "disjoint position pairs to swap per candidate")
	refineCmd.Flags().IntP("workers", "w", 0, "concurrent evaluations (0 = one per CPU)")
	return refineCmd
}

func init() {
	rootCmd.AddCommand(newRefineCmd())
}
