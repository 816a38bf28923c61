package engine

import (
	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// inventoryStrategy samples like the lottery (proportional to
// tickets) but consumes stock instead of redistributing it.
type inventoryStrategy struct{}

func (inventoryStrategy) Select(cat *config.Category, excluded map[int]bool, rng RNG) (int, error) {
	return pickByWeight(rng, choiceWeights(cat, func(c config.Choice) int64 { return c.Tickets }), excluded)
}

// Apply decrements the pick's tickets, floored at 0; other entries are
// untouched.
func (inventoryStrategy) Apply(cat *config.Category, index int) {
	if cat.Choices[index].Tickets > 0 {
		cat.Choices[index].Tickets--
	}
}

func (inventoryStrategy) Table(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	return weightedChanceTable(cat, excluded, index, func(c config.Choice) int64 { return c.Tickets })
}
