package cmd

import (
	"context"
	"errors"
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

// newOptimizeCmd creates the `optimize` command: simulated annealing from
// a starting layout.
func newOptimizeCmd() *cobra.Command {
	optimizeCmd := &cobra.Command{
		Use:   "optimize <corpus> [layout]",
		Short: "Search for better layouts with simulated annealing",
		Args:  cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("search.top_k", cmd.Flags().Lookup("top")); err != nil {
				return err
			}
			if err := viper.BindPFlag("search.max_swaps", cmd.Flags().Lookup("swaps")); err != nil {
				return err
			}
			return viper.BindPFlag("search.generations", cmd.Flags().Lookup("generations"))
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

			rng := newRNG(cfg.Search.Seed)
			annealer := search.NewAnnealer(penalty.NewScorer(), rng, logger)
			opts := search.Options{
				MaxSwaps: cfg.Search.MaxSwaps,
				Detailed: cfg.Search.Debug,
			}

			for gen := 1; cfg.Search.Generations == 0 || gen <= cfg.Search.Generations; gen++ {
				tracker := search.NewTracker(cfg.Search.TopK)
				if err := annealer.Run(ctx, idx, start, opts, tracker); err != nil {
					if errors.Is(err, context.Canceled) {
						logger.Warn("optimization interrupted", zap.Int("generation", gen))
						return err
					}
					return fmt.Errorf("annealing generation %d: %w", gen, err)
				}

				logger.Info("generation finished",
					zap.Int("generation", gen),
					zap.Int("layouts_retained", tracker.Len()))
				for _, e := range tracker.Best() {
					fmt.Fprintln(os.Stdout)
					if err := report.WriteResult(os.Stdout, e.Layout, e.Result); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	optimizeCmd.Flags().IntP("top", "t", 1, "number of top layouts to retain and print")
	optimizeCmd.Flags().IntP("swaps", "s", 3, "maximum random swaps per iteration")
	optimizeCmd.Flags().IntP("generations", "g", 1, "annealing generations to run (0 = until interrupted)")
	return optimizeCmd
}

func init() {
	rootCmd.AddCommand(newOptimizeCmd())
}
