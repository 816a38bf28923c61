package engine

import (
	"math"

	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// gaussianRetryBudget bounds index-mapping resamples per offer. The
// budget covers both out-of-range draws and draws landing on excluded
// indices; past it, selection falls back to a deterministic scan so
// termination never depends on the RNG.
const gaussianRetryBudget = 64

// gaussianStrategy favors the least-recently-picked choices. The list
// is recency ordered: front = longest unpicked, end = most recently
// picked. A draw takes |Normal(0, N/scaling)| truncated to an index
// counted from the front, so index 0 is the most probable and the
// probability decreases monotonically toward the end.
type gaussianStrategy struct{}

func (gaussianStrategy) Select(cat *config.Category, excluded map[int]bool, rng RNG) (int, error) {
	n := len(cat.Choices)
	remaining := eligible(n, excluded)
	if len(remaining) == 0 {
		return 0, ErrExhausted
	}

	stddev := float64(n) / cat.StddevScalingFactor
	index := 0
	for attempt := 0; attempt < gaussianRetryBudget; attempt++ {
		// Range-check in float space: a tiny scaling factor makes the
		// product overflow int, and a converted overflow is negative.
		v := math.Abs(rng.NormFloat64()) * stddev
		if v >= float64(n) {
			continue
		}
		index = int(v)
		if !excluded[index] {
			return index, nil
		}
	}

	// Retry budget spent: take the eligible index nearest to the last
	// in-range draw, preferring the front (the favored side) on ties.
	for d := 0; d < n; d++ {
		if j := index - d; j >= 0 && !excluded[j] {
			return j, nil
		}
		if j := index + d; j < n && !excluded[j] {
			return j, nil
		}
	}
	return 0, ErrExhausted
}

// Apply moves the pick to the end of the list, marking it the most
// recently picked; all other entries keep their relative order.
func (gaussianStrategy) Apply(cat *config.Category, index int) {
	moveToEnd(cat.Choices, index)
}

func (gaussianStrategy) Table(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	return gaussianChanceTable(cat, excluded, index)
}

// normalCDF is the cumulative distribution of Normal(0, stddev).
func normalCDF(x, stddev float64) float64 {
	return 0.5 * (1 + math.Erf(x/(stddev*math.Sqrt2)))
}
