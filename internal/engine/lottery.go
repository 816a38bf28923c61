package engine

import (
	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// lotteryStrategy picks proportionally to current tickets. Zero-ticket
// entries have zero probability but stay in consideration until
// explicitly declined.
type lotteryStrategy struct{}

func (lotteryStrategy) Select(cat *config.Category, excluded map[int]bool, rng RNG) (int, error) {
	return pickByWeight(rng, choiceWeights(cat, func(c config.Choice) int64 { return c.Tickets }), excluded)
}

// Apply settles the lottery: every entry that was not picked gains its
// weight in tickets, and the pick's tickets return to its reset value
// (0 unless configured otherwise).
func (lotteryStrategy) Apply(cat *config.Category, index int) {
	for i := range cat.Choices {
		if i == index {
			cat.Choices[i].Tickets = cat.Choices[i].Reset
			continue
		}
		cat.Choices[i].Tickets += cat.Choices[i].Weight
	}
}

func (lotteryStrategy) Table(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	return weightedChanceTable(cat, excluded, index, func(c config.Choice) int64 { return c.Tickets })
}
