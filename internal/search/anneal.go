package search

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
)

// Options configure one annealing generation.
type Options struct {
	// MaxSwaps bounds the random swaps applied per iteration; each
	// iteration draws the actual count uniformly from [1, MaxSwaps].
	MaxSwaps int
	// Detailed carries per-rule breakdowns on every scored candidate.
	Detailed bool
}

// Annealer runs simulated annealing chains over layouts. The random source
// is injected so chains are reproducible under test.
type Annealer struct {
	scorer *penalty.Scorer
	rng    *rand.Rand
	logger *zap.Logger
}

// NewAnnealer builds an annealer around a scorer and a random source.
func NewAnnealer(scorer *penalty.Scorer, rng *rand.Rand, logger *zap.Logger) *Annealer {
	return &Annealer{scorer: scorer, rng: rng, logger: logger}
}

// Run executes one full annealing generation from start: NumIterations
// rounds of clone, random shuffle, score, and the temperature-based
// acceptance test. Accepted candidates become the new baseline and are
// offered to the tracker; rejected ones still consume an iteration, so the
// schedule cools regardless. Returns early only on context cancellation.
func (a *Annealer) Run(ctx context.Context, idx *penalty.QuartadIndex, start *keyboard.Layout, opts Options, tracker *Tracker) error {
	maxSwaps := opts.MaxSwaps
	if maxSwaps < 1 {
		maxSwaps = 1
	}

	accepted := start.Clone()
	acceptedScaled := a.scorer.Score(idx, accepted, false).Scaled
	a.logger.Debug("annealing generation starting",
		zap.Float64("initial_scaled", acceptedScaled),
		zap.Int("iterations", NumIterations))

	for i := 1; i <= NumIterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		candidate := accepted.Clone()
		candidate.Shuffle(a.rng, a.rng.Intn(maxSwaps)+1)
		result := a.scorer.Score(idx, candidate, opts.Detailed)

		if !AcceptTransition(a.rng, result.Scaled-acceptedScaled, i) {
			continue
		}

		accepted = candidate
		acceptedScaled = result.Scaled
		tracker.Add(candidate, result)
		a.logger.Debug("transition accepted",
			zap.Int("iteration", i),
			zap.Float64("scaled", result.Scaled))
	}
	return nil
}
