package engine

// pickByWeight draws one index by cumulative-weight inversion: total
// the weights of eligible indices, draw a uniform real in [0, total),
// and walk the cumulative sums in list order until one exceeds the
// draw.
//
// Zero-weight entries stay in the list with zero probability; they are
// skipped during the walk so a floating-point edge draw can never land
// on one. A total of zero across all eligible indices means nothing
// can be chosen and is reported as ErrExhausted rather than divided by.
func pickByWeight(rng RNG, weights []int64, excluded map[int]bool) (int, error) {
	var total int64
	for i, w := range weights {
		if !excluded[i] {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrExhausted
	}

	draw := rng.Float64() * float64(total)
	var cum float64
	last := 0
	for i, w := range weights {
		if excluded[i] || w == 0 {
			continue
		}
		last = i
		cum += float64(w)
		if draw < cum {
			return i, nil
		}
	}
	// draw == total can only happen through floating-point rounding;
	// the last positive-weight index takes it.
	return last, nil
}
