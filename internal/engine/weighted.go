package engine

import (
	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// weightedStrategy picks with probability proportional to each
// choice's weight. A weight of 0 gives zero probability but the entry
// stays in consideration (it shows in chance tables and can be
// declined); only the excluded set removes entries.
type weightedStrategy struct{}

func (weightedStrategy) Select(cat *config.Category, excluded map[int]bool, rng RNG) (int, error) {
	return pickByWeight(rng, choiceWeights(cat, func(c config.Choice) int64 { return c.Weight }), excluded)
}

// Apply is a no-op: weights persist unchanged across picks.
func (weightedStrategy) Apply(*config.Category, int) {}

func (weightedStrategy) Table(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	return weightedChanceTable(cat, excluded, index, func(c config.Choice) int64 { return c.Weight })
}

// choiceWeights projects one numeric field across the choice list.
func choiceWeights(cat *config.Category, weightOf func(config.Choice) int64) []int64 {
	weights := make([]int64, len(cat.Choices))
	for i, c := range cat.Choices {
		weights[i] = weightOf(c)
	}
	return weights
}
