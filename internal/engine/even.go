package engine

import (
	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// evenStrategy picks uniformly among the non-excluded choices. It is
// the weighted draw with every weight fixed at 1, which keeps a single
// sampling code path across the weighted family.
type evenStrategy struct{}

func (evenStrategy) Select(cat *config.Category, excluded map[int]bool, rng RNG) (int, error) {
	weights := make([]int64, len(cat.Choices))
	for i := range weights {
		weights[i] = 1
	}
	return pickByWeight(rng, weights, excluded)
}

// Apply is a no-op: the even model carries no per-choice state.
func (evenStrategy) Apply(*config.Category, int) {}

func (evenStrategy) Table(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	return weightedChanceTable(cat, excluded, index, func(config.Choice) int64 { return 1 })
}
