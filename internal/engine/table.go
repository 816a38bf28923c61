package engine

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/roach88/pick/internal/config"
	"github.com/roach88/pick/internal/ui"
)

// Chance tables accompany each offer in verbose mode. They show the
// candidates still in play, what the offered row was, and (for the
// probabilistic models) each candidate's chance of being offered.

// weightedChanceTable builds the table for the weighted family (even,
// weighted, lottery, inventory). Rows are sorted by ascending weight,
// stable so equal weights keep list order.
func weightedChanceTable(cat *config.Category, excluded map[int]bool, index int, weightOf func(config.Choice) int64) ui.Table {
	remaining := eligible(len(cat.Choices), excluded)

	var total int64
	for _, i := range remaining {
		total += weightOf(cat.Choices[i])
	}

	sorted := make([]int, len(remaining))
	copy(sorted, remaining)
	sort.SliceStable(sorted, func(a, b int) bool {
		return weightOf(cat.Choices[sorted[a]]) < weightOf(cat.Choices[sorted[b]])
	})

	t := ui.Table{
		Header: []string{"Name", "Weight", "Chance"},
		Footer: []string{"Total", strconv.FormatInt(total, 10), formatChance(100)},
	}
	for _, i := range sorted {
		w := weightOf(cat.Choices[i])
		chance := 0.0
		if total > 0 {
			chance = float64(w) / float64(total) * 100
		}
		t.Rows = append(t.Rows, ui.Row{
			Cells:  []string{cat.Choices[i].Name, strconv.FormatInt(w, 10), formatChance(chance)},
			Chosen: i == index,
		})
	}
	return t
}

// gaussianChanceTable shows each remaining candidate's chance as a
// slice of the normal CDF. The factor of 200 folds the |x| reflection
// around the axis into a percentage: the chance of landing in [i, i+1)
// exists on both sides of zero.
func gaussianChanceTable(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	stddev := float64(len(cat.Choices)) / cat.StddevScalingFactor

	t := ui.Table{Header: []string{"Name", "Chance"}}
	var total float64
	for _, i := range eligible(len(cat.Choices), excluded) {
		chance := (normalCDF(float64(i)+1, stddev) - normalCDF(float64(i), stddev)) * 200
		total += chance
		t.Rows = append(t.Rows, ui.Row{
			Cells:  []string{cat.Choices[i].Name, formatChance(chance)},
			Chosen: i == index,
		})
	}
	t.Footer = []string{"Total", formatChance(total)}
	return t
}

// lruTable lists the remaining candidates most-recent first, so the
// offered (least recently used) entry reads at the bottom.
func lruTable(cat *config.Category, excluded map[int]bool, index int) ui.Table {
	remaining := eligible(len(cat.Choices), excluded)

	t := ui.Table{Header: []string{"Name"}}
	for k := len(remaining) - 1; k >= 0; k-- {
		i := remaining[k]
		t.Rows = append(t.Rows, ui.Row{
			Cells:  []string{cat.Choices[i].Name},
			Chosen: i == index,
		})
	}
	return t
}

func formatChance(chance float64) string {
	return fmt.Sprintf("%.2f%%", chance)
}
