package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	chosenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
)

// renderTable renders a chance table. The chosen row is highlighted;
// the footer, when present, renders as a final unhighlighted row.
func renderTable(t Table) string {
	rows := make([][]string, 0, len(t.Rows)+1)
	chosen := map[int]bool{}
	for i, r := range t.Rows {
		rows = append(rows, r.Cells)
		if r.Chosen {
			chosen[i] = true
		}
	}
	if len(t.Footer) > 0 {
		rows = append(rows, t.Footer)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Header...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case chosen[row]:
				return chosenStyle
			default:
				return cellStyle
			}
		})

	return tbl.Render()
}
