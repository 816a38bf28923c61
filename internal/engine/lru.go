package engine

import (
	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// lruStrategy is deterministic: the front of the list is the least
// recently used choice, and select always offers the first entry not
// yet declined.
type lruStrategy struct{}

func (lruStrategy) Select(cat *config.Category, excluded map[int]bool, _ RNG) (int, error) {
	for i := range cat.Choices {
		if !excluded[i] {
			return i, nil
		}
	}
	return 0, ErrExhausted
}

// Apply moves the pick to the end of the list; all other entries keep
// their relative order.
func (lruStrategy) Apply(cat *config.Category, index int) {
	moveToEnd(cat.Choices, index)
}

func (lruStrategy) Table(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	return lruTable(cat, excluded, index)
}
