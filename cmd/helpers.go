// File: cmd/helpers.go
package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/xkilldash9x/layoutsmith/internal/keyboard"
	"github.com/xkilldash9x/layoutsmith/internal/penalty"
)

// loadCorpus reads the corpus file the search scores against.
func loadCorpus(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read corpus: %w", err)
	}
	return string(data), nil
}

// loadStartLayout resolves the layout the search starts from: the second
// positional argument names a layout descriptor file, otherwise the
// built-in initial layout is used.
func loadStartLayout(args []string) (*keyboard.Layout, error) {
	if len(args) < 2 {
		return keyboard.Initial.Clone(), nil
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return nil, fmt.Errorf("could not read layout: %w", err)
	}
	return keyboard.ParseLayout(string(data)), nil
}

// buildIndex preprocesses the corpus into the quartad index every scoring
// pass reuses. The built-in initial layout is the fixed typability
// reference regardless of which layout the search starts from.
func buildIndex(corpus string) (*penalty.QuartadIndex, error) {
	return penalty.BuildQuartadIndex(corpus, keyboard.Initial.PositionMap())
}

// newRNG builds the injected random source, seeded from config for
// reproducible runs or from the clock when no seed is set.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
