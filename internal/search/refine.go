package search

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
)

// RefineOptions configure a local refinement run.
type RefineOptions struct {
	// Depth is the number of disjoint position pairs swapped at once when
	// enumerating the neighborhood of the current baseline.
	Depth int
	// Workers caps concurrent candidate evaluations; <= 0 means one per
	// logical CPU. Scoring is pure, so candidates are independent; only
	// tracker inserts are serialized.
	Workers int
	// Detailed carries per-rule breakdowns on every scored candidate.
	Detailed bool
}

// Refiner hill-climbs a layout to a neighborhood-local optimum: it
// exhaustively scores every layout within Depth simultaneous swaps of the
// baseline, moves to the best neighbor, and repeats until no neighbor
// improves on the baseline.
type Refiner struct {
	scorer *penalty.Scorer
	logger *zap.Logger
}

// NewRefiner builds a refiner around a scorer.
func NewRefiner(scorer *penalty.Scorer, logger *zap.Logger) *Refiner {
	return &Refiner{scorer: scorer, logger: logger}
}

// Run climbs from start and returns the local optimum with its score.
// Every enumerated candidate is offered to the tracker along the way.
func (r *Refiner) Run(ctx context.Context, idx *penalty.QuartadIndex, start *keyboard.Layout, opts RefineOptions, tracker *Tracker) (*keyboard.Layout, penalty.Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	current := start.Clone()
	best := r.scorer.Score(idx, current, opts.Detailed)
	tracker.Add(current, best)

	for round := 1; ; round++ {
		winner, result, err := r.bestNeighbor(ctx, idx, current, opts, workers, tracker)
		if err != nil {
			return nil, penalty.Result{}, err
		}
		if winner == nil || result.Scaled >= best.Scaled {
			r.logger.Info("refinement converged",
				zap.Int("rounds", round-1),
				zap.Float64("scaled", best.Scaled))
			return current, best, nil
		}

		current, best = winner, result
		r.logger.Info("refinement round improved baseline",
			zap.Int("round", round),
			zap.Float64("scaled", best.Scaled))
	}
}

// bestNeighbor scores the whole permutation neighborhood of base and
// returns the lowest-scaled candidate. Candidates are fanned out to a
// worker pool; the tracker and the running minimum share one mutex.
func (r *Refiner) bestNeighbor(ctx context.Context, idx *penalty.QuartadIndex, base *keyboard.Layout, opts RefineOptions, workers int, tracker *Tracker) (*keyboard.Layout, penalty.Result, error) {
	g, gctx := errgroup.WithContext(ctx)
	candidates := make(chan *keyboard.Layout)

	g.Go(func() error {
		defer close(candidates)
		for l := range keyboard.Permutations(base, opts.Depth) {
			select {
			case candidates <- l:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var (
		mu     sync.Mutex
		winner *keyboard.Layout
		best   penalty.Result
	)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for l := range candidates {
				result := r.scorer.Score(idx, l, opts.Detailed)
				mu.Lock()
				tracker.Add(l, result)
				if winner == nil || result.Scaled < best.Scaled {
					winner, best = l, result
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, penalty.Result{}, err
	}
	return winner, best, nil
}
