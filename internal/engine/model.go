package engine

import (
	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// strategy is the per-model contract.
//
// Select is pure over (category, excluded, rng): it never mutates the
// category, never returns an excluded index, and returns ErrExhausted
// when nothing eligible can be chosen. Apply mutates the category for
// an accepted pick and runs exactly once per invocation. Table builds
// the chance table for one offer; the engine only calls it when the UI
// has opted in.
type strategy interface {
	Select(cat *config.Category, excluded map[int]bool, rng RNG) (int, error)
	Apply(cat *config.Category, index int)
	Table(cat *config.Category, excluded map[int]bool, index int) ui.Table
}

// strategyFor maps a model kind to its strategy. The kind set is
// closed; an unknown kind is a configuration error, handled by
// validation before dispatch.
func strategyFor(kind config.Kind) (strategy, bool) {
	switch kind {
	case config.KindEven:
		return evenStrategy{}, true
	case config.KindGaussian:
		return gaussianStrategy{}, true
	case config.KindInventory:
		return inventoryStrategy{}, true
	case config.KindLottery:
		return lotteryStrategy{}, true
	case config.KindLRU:
		return lruStrategy{}, true
	case config.KindWeighted:
		return weightedStrategy{}, true
	default:
		return nil, false
	}
}

// moveToEnd repositions choice i at the end of the list, preserving
// the relative order of everything else. Marks an entry as the most
// recently picked for the ordering-sensitive models.
func moveToEnd(choices []config.Choice, i int) {
	c := choices[i]
	copy(choices[i:], choices[i+1:])
	choices[len(choices)-1] = c
}

// eligible returns the non-excluded indices in list order.
func eligible(n int, excluded map[int]bool) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !excluded[i] {
			out = append(out, i)
		}
	}
	return out
}
